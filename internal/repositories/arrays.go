package repository

import (
	"github.com/lib/pq"
)

// textArray binds a Go slice to a NOT NULL text[] column; nil becomes '{}'.
func textArray(values []string) any {
	if values == nil {
		values = []string{}
	}

	return pq.Array(values)
}
