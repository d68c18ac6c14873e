package postgres

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/rafabene/kitanda-backend/internal/domain/repositories"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// listScope traduz um ListQuery em filtros GORM.
// columns mapeia campo lógico -> coluna; campos fora do mapa são rejeitados.
func listScope(q *repositories.ListQuery, columns map[string]string) (func(*gorm.DB) *gorm.DB, error) {
	conds := make([]repositories.Condition, 0, len(q.Conditions))
	for _, c := range q.Conditions {
		if _, ok := columns[c.Field]; !ok {
			return nil, fmt.Errorf("unknown filter field %q", c.Field)
		}
		conds = append(conds, c)
	}

	var searchSQL string
	var searchArgs []any
	if q.Search != nil {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(q.Search.Term)) + "%"
		parts := make([]string, 0, len(q.Search.Fields))
		for _, f := range q.Search.Fields {
			col, ok := columns[f]
			if !ok {
				return nil, fmt.Errorf("unknown search field %q", f)
			}
			parts = append(parts, "LOWER("+col+`) LIKE ? ESCAPE '\'`)
			searchArgs = append(searchArgs, pattern)
		}
		searchSQL = "(" + strings.Join(parts, " OR ") + ")"
	}

	return func(db *gorm.DB) *gorm.DB {
		for _, c := range conds {
			db = db.Where(columns[c.Field]+" = ?", c.Value)
		}
		if searchSQL != "" {
			db = db.Where(searchSQL, searchArgs...)
		}
		return db
	}, nil
}

// orderClause monta o ORDER BY a partir dos critérios do ListQuery
func orderClause(q *repositories.ListQuery, columns map[string]string) (string, error) {
	parts := make([]string, 0, len(q.Orders))
	for _, o := range q.Orders {
		col, ok := columns[o.Field]
		if !ok {
			return "", fmt.Errorf("unknown order field %q", o.Field)
		}
		if o.Desc {
			col += " DESC"
		}
		parts = append(parts, col)
	}
	return strings.Join(parts, ", "), nil
}

// paginate executa count + página para o model informado
func paginate[M any](db *gorm.DB, q *repositories.ListQuery, columns map[string]string, prepare func(*gorm.DB) *gorm.DB) ([]*M, int64, error) {
	scope, err := listScope(q, columns)
	if err != nil {
		return nil, 0, err
	}
	order, err := orderClause(q, columns)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := db.Model(new(M)).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []*M
	query := db.Model(new(M)).Scopes(scope)
	if prepare != nil {
		query = prepare(query)
	}
	if order != "" {
		query = query.Order(order)
	}
	if err := query.Offset(q.Offset()).Limit(q.Limit).Find(&models).Error; err != nil {
		return nil, 0, err
	}

	return models, total, nil
}
