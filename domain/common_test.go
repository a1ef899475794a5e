package domain

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicMessage(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		want   string
		public bool
	}{
		{name: "sentinel", err: ErrRecipeNotFound, want: ErrRecipeNotFound.Error(), public: true},
		{name: "wrapped sentinel", err: fmt.Errorf("update recipe: %w", ErrUnknownCategory), want: ErrUnknownCategory.Error(), public: true},
		{name: "driver error", err: errors.New(`pq: relation "users" does not exist`)},
		{name: "nil", err: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PublicMessage(tt.err)
			assert.Equal(t, tt.public, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Every Err variable declared in this package must be listed as public.
func TestPublicErrorsListsEverySentinel(t *testing.T) {
	fset := token.NewFileSet()
	pkgs, err := parser.ParseDir(fset, ".", func(fi fs.FileInfo) bool {
		return !strings.HasSuffix(fi.Name(), "_test.go")
	}, 0)
	require.NoError(t, err)

	declared := 0
	for _, pkg := range pkgs {
		for _, file := range pkg.Files {
			ast.Inspect(file, func(n ast.Node) bool {
				spec, ok := n.(*ast.ValueSpec)
				if !ok {
					return true
				}
				for _, name := range spec.Names {
					if strings.HasPrefix(name.Name, "Err") {
						declared++
					}
				}
				return true
			})
		}
	}
	assert.Equal(t, declared, len(publicErrors))
}
