package tng

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fablekit/tng/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

var ErrPatch = errors.New("patch error")

// Patch applies an RFC 6902 patch to the JSON form of doc, as written by
// encode with the json format, and returns the patched copy. doc is not
// modified. The result must still be a well formed document.
func Patch(doc *ir.Document, patch []byte) (*ir.Document, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	d, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	jOut, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	res := &ir.Document{}
	if err := json.Unmarshal(jOut, res); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	if err := res.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return res, nil
}
