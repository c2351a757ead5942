package ai

import (
	"errors"
	"strings"

	"github.com/reusedev/draw-edit/internal/consts"
)

var ErrMissingCredential = errors.New("api key not configured")

// Token is the credential used to reach a model supplier.
type Token struct {
	Token    string
	Desc     string
	Supplier consts.ModelSupplier
}

func (t Token) GetSupplier() consts.ModelSupplier {
	return t.Supplier
}

func (t Token) Valid() bool {
	return strings.TrimSpace(t.Token) != ""
}
