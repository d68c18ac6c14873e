package i18n

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"sync"
	"text/template"
)

//go:embed locales/*.json
var embedded embed.FS

// Service gerencia traduções e internacionalização
type Service struct {
	mu              sync.RWMutex
	translations    map[string]map[string]string // [language][key]message
	templates       map[string]*template.Template
	defaultLanguage string
}

// NewService cria um novo serviço de i18n
// localesDir: diretório com os arquivos JSON; vazio usa as traduções embutidas
// defaultLang: idioma padrão (fallback)
func NewService(localesDir, defaultLang string) (*Service, error) {
	if localesDir == "" {
		return NewServiceFromFS(embedded, "locales", defaultLang)
	}
	return NewServiceFromFS(os.DirFS(localesDir), ".", defaultLang)
}

// NewEmbeddedService carrega as traduções embutidas no binário
func NewEmbeddedService(defaultLang string) (*Service, error) {
	return NewServiceFromFS(embedded, "locales", defaultLang)
}

// NewServiceFromFS carrega todos os *.json de dir dentro de fsys
func NewServiceFromFS(fsys fs.FS, dir, defaultLang string) (*Service, error) {
	s := &Service{
		translations:    make(map[string]map[string]string),
		templates:       make(map[string]*template.Template),
		defaultLanguage: defaultLang,
	}

	files, err := fs.Glob(fsys, path.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to find locale files: %w", err)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no locale files found in %s", dir)
	}

	for _, file := range files {
		lang := strings.TrimSuffix(path.Base(file), ".json")

		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read locale file %s: %w", file, err)
		}

		var translations map[string]string
		if err := json.Unmarshal(data, &translations); err != nil {
			return nil, fmt.Errorf("failed to parse locale file %s: %w", file, err)
		}

		// Mensagens com parâmetros são compiladas uma única vez
		for key, message := range translations {
			if !strings.Contains(message, "{{") {
				continue
			}
			tmpl, err := template.New(key).Option("missingkey=zero").Parse(message)
			if err != nil {
				return nil, fmt.Errorf("invalid template %q in %s: %w", key, file, err)
			}
			s.templates[lang+"/"+key] = tmpl
		}

		s.translations[lang] = translations
	}

	if _, ok := s.translations[defaultLang]; !ok {
		return nil, fmt.Errorf("default language %s not found in locale files", defaultLang)
	}

	return s, nil
}

// T traduz uma chave para o idioma especificado
// Suporta interpolação de parâmetros usando templates Go ({{.Field}})
func (s *Service) T(lang, key string, params ...map[string]interface{}) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	resolvedLang := lang
	message, ok := s.getTranslation(lang, key)
	if !ok {
		resolvedLang = s.defaultLanguage
		message, ok = s.getTranslation(s.defaultLanguage, key)
	}

	if !ok {
		return key
	}

	tmpl, isTemplate := s.templates[resolvedLang+"/"+key]
	if !isTemplate {
		return message
	}

	var data map[string]interface{}
	if len(params) > 0 {
		data = params[0]
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return message
	}

	return buf.String()
}

// getTranslation busca uma tradução sem lock (uso interno)
func (s *Service) getTranslation(lang, key string) (string, bool) {
	langMap, ok := s.translations[lang]
	if !ok {
		return "", false
	}
	msg, ok := langMap[key]
	return msg, ok
}

// GetDefaultLanguage retorna o idioma padrão configurado
func (s *Service) GetDefaultLanguage() string {
	return s.defaultLanguage
}

// GetSupportedLanguages retorna lista de idiomas suportados
func (s *Service) GetSupportedLanguages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	langs := make([]string, 0, len(s.translations))
	for lang := range s.translations {
		langs = append(langs, lang)
	}
	return langs
}

// IsLanguageSupported verifica se um idioma é suportado
func (s *Service) IsLanguageSupported(lang string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.translations[lang]
	return ok
}

// MissingKeys lista as chaves do idioma padrão ausentes em lang
func (s *Service) MissingKeys(lang string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var missing []string
	for key := range s.translations[s.defaultLanguage] {
		if _, ok := s.translations[lang][key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}
