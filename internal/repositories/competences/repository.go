// Package competences reads canonical competence names.
package competences

import "context"

type Repository interface {
	ListNames(ctx context.Context) ([]string, error)
}
