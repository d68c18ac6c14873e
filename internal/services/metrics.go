package services

// Recorder recebe os eventos de negócio que viram métricas
type Recorder interface {
	ResourceViewed(resource string)
	LoginAttempt(result string)
}

type nopRecorder struct{}

func (nopRecorder) ResourceViewed(string) {}
func (nopRecorder) LoginAttempt(string)   {}

// NopRecorder descarta os eventos
var NopRecorder Recorder = nopRecorder{}
