package store

import (
	"strings"

	"gorm.io/gorm"
)

// LinkFilter narrows a link listing to entries whose description or url
// contains Needle as a substring. A nil Needle matches every link.
type LinkFilter struct {
	Needle *string
}

// likeEscaper makes LIKE metacharacters in the needle match literally,
// so the filter is plain substring containment.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (f LinkFilter) scope() func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if f.Needle == nil {
			return tx
		}
		pattern := "%" + likeEscaper.Replace(*f.Needle) + "%"
		return tx.Where(
			`description LIKE ? ESCAPE '\' OR url LIKE ? ESCAPE '\'`,
			pattern, pattern,
		)
	}
}

// Page carries the pagination window of a listing request. Take is assumed
// to be validated by the caller; a negative Skip is treated as zero.
type Page struct {
	Skip int
	Take int
}

func (p Page) scope() func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		skip := p.Skip
		if skip < 0 {
			skip = 0
		}
		tx = tx.Offset(skip)
		if p.Take > 0 {
			tx = tx.Limit(p.Take)
		}
		return tx
	}
}
