package models

import (
	"errors"
	"fmt"
	"slices"

	"github.com/bytedance/sonic"
)

// GenerateContent is the capability checked when no other method is requested
const GenerateContent = "generateContent"

// ErrInvalidJSON is returned when the listing body is not valid JSON
var ErrInvalidJSON = errors.New("invalid JSON in model list response")

// ListResponse is the body returned by the model listing endpoint
type ListResponse struct {
	Models []Descriptor
}

// Descriptor is one entry of the model catalog. Fields not listed here are ignored.
type Descriptor struct {
	Name                       string
	SupportedGenerationMethods []string

	// set when a decoded entry carried no "name" field
	unnamed bool
}

// Supports reports whether the model lists method among its generation methods.
// A missing method list never matches.
func (d Descriptor) Supports(method string) bool {
	return slices.Contains(d.SupportedGenerationMethods, method)
}

// HasName reports whether the entry carried a name
func (d Descriptor) HasName() bool {
	return !d.unnamed
}

// DecodeListResponse parses a listing body. Absent "models" and
// "supportedGenerationMethods" fields are empty; null or mistyped values
// are errors. The syntax error from the decoder is wrapped, not printed.
func DecodeListResponse(body []byte) (ListResponse, error) {
	var root any
	if err := sonic.Unmarshal(body, &root); err != nil {
		return ListResponse{}, &decodeError{cause: err}
	}

	object, ok := root.(map[string]any)
	if !ok {
		return ListResponse{}, errors.New("model list response is not a JSON object")
	}

	rawModels, present := object["models"]
	if !present {
		return ListResponse{}, nil
	}
	entries, ok := rawModels.([]any)
	if !ok {
		return ListResponse{}, fmt.Errorf("invalid field %q: expected an array", "models")
	}

	list := ListResponse{Models: make([]Descriptor, 0, len(entries))}
	for i, entry := range entries {
		d, err := decodeDescriptor(i, entry)
		if err != nil {
			return ListResponse{}, err
		}
		list.Models = append(list.Models, d)
	}
	return list, nil
}

func decodeDescriptor(index int, entry any) (Descriptor, error) {
	fields, ok := entry.(map[string]any)
	if !ok {
		return Descriptor{}, fmt.Errorf("invalid model entry %d: expected an object", index)
	}

	var d Descriptor
	if rawName, present := fields["name"]; present {
		name, ok := rawName.(string)
		if !ok {
			return Descriptor{}, fmt.Errorf("invalid field %q in model entry %d", "name", index)
		}
		d.Name = name
	} else {
		d.unnamed = true
	}

	rawMethods, present := fields["supportedGenerationMethods"]
	if !present {
		return d, nil
	}
	methods, ok := rawMethods.([]any)
	if !ok {
		return Descriptor{}, fmt.Errorf("invalid field %q in model entry %d", "supportedGenerationMethods", index)
	}
	d.SupportedGenerationMethods = make([]string, 0, len(methods))
	for _, m := range methods {
		method, ok := m.(string)
		if !ok {
			return Descriptor{}, fmt.Errorf("invalid field %q in model entry %d", "supportedGenerationMethods", index)
		}
		d.SupportedGenerationMethods = append(d.SupportedGenerationMethods, method)
	}
	return d, nil
}

// decodeError keeps the decoder's message, which echoes part of the body,
// out of the user-facing text
type decodeError struct {
	cause error
}

func (e *decodeError) Error() string {
	return ErrInvalidJSON.Error()
}

func (e *decodeError) Unwrap() []error {
	return []error{ErrInvalidJSON, e.cause}
}
