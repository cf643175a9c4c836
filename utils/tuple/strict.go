// File: strict.go
// Title: Non-nil Guards for Strict Tuples
// Description: Null-argument checks shared by the strict tuple variants.
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package tuple

import (
	lzerrors "github.com/labzen/tool/core/errors"
	"github.com/labzen/tool/utils/objectx"
)

var elementNames = [...]string{"first", "second", "third", "fourth"}

// requireElements checks constructor arguments in element order
func requireElements(operation string, values ...interface{}) error {
	for i, v := range values {
		if err := requireElement(operation, elementNames[i], v); err != nil {
			return err
		}
	}
	return nil
}

func requireElement(operation, name string, value interface{}) error {
	if objectx.IsNil(value) {
		return lzerrors.NullArgument(lzerrors.ModuleTuple, operation, name)
	}
	return nil
}
