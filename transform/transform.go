// Package transform turns a raw IDL document into a TypeScript type
// artifact.
//
// Run decodes the input format, applies an optional raw patch, picks the
// document shape and hands off to New or Old.
package transform

import (
	"fmt"

	"github.com/signadot/idlts/debug"
	"github.com/signadot/idlts/emit"
	"github.com/signadot/idlts/format"
	"github.com/signadot/idlts/idl"
	"github.com/signadot/idlts/legacy"
	"github.com/signadot/idlts/normalize"
	"github.com/signadot/idlts/patch"
	"github.com/signadot/idlts/version"
)

type Options struct {
	// TypeName overrides the exported type name.
	TypeName string
	// Version forces the document shape instead of detecting it.
	Version *version.Version

	Description *string
	Repository  *string

	Format format.Format
	// Patch is a JSON Patch or merge patch applied before detection.
	Patch []byte
}

type Result struct {
	Artifact *emit.Artifact
	Version  version.Version
}

type Stage string

const (
	DecodeStage    Stage = "decode"
	PatchStage     Stage = "patch"
	DetectStage    Stage = "detect"
	ParseStage     Stage = "parse"
	SerializeStage Stage = "serialize"
)

// Error is a failure in one stage of a run.
type Error struct {
	Stage   Stage
	Version *version.Version
	Err     error
}

func (e *Error) Error() string {
	if e.Version != nil {
		return fmt.Sprintf("%s %s IDL: %v", e.Stage, e.Version, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func stageErr(s Stage, v *version.Version, err error) error {
	return &Error{Stage: s, Version: v, Err: err}
}

func Run(raw []byte, opts Options) (*Result, error) {
	raw, err := format.ToJSON(opts.Format, raw)
	if err != nil {
		return nil, stageErr(DecodeStage, nil, err)
	}
	if len(opts.Patch) != 0 {
		raw, err = patch.Apply(raw, opts.Patch)
		if err != nil {
			return nil, stageErr(PatchStage, nil, err)
		}
	}
	v, err := version.Resolve(raw, opts.Version)
	if err != nil {
		return nil, stageErr(DetectStage, nil, err)
	}
	var a *emit.Artifact
	switch v {
	case version.New:
		a, err = New(raw, opts)
	case version.Old:
		a, err = Old(raw, opts)
	default:
		err = stageErr(DetectStage, nil, fmt.Errorf("%w: %d", version.ErrBadVersion, int(v)))
	}
	if err != nil {
		return nil, err
	}
	return &Result{Artifact: a, Version: v}, nil
}

// New converts a current shape JSON document.
func New(raw []byte, opts Options) (*emit.Artifact, error) {
	v := version.New
	doc, err := idl.Parse(raw)
	if err != nil {
		return nil, stageErr(ParseStage, &v, err)
	}
	PatchMetadata(doc, opts.Description, opts.Repository)
	normalize.IDL(doc)
	a, err := emit.New(doc, opts.TypeName)
	if err != nil {
		return nil, stageErr(SerializeStage, &v, err)
	}
	return a, nil
}

// Old converts a legacy shape JSON document. Metadata overrides do not
// apply to it.
func Old(raw []byte, opts Options) (*emit.Artifact, error) {
	v := version.Old
	doc, err := legacy.Parse(raw)
	if err != nil {
		return nil, stageErr(ParseStage, &v, err)
	}
	if debug.Patch() && (opts.Description != nil || opts.Repository != nil) {
		debug.Logf("patch: metadata overrides ignored for %s IDL %q\n", v, doc.Name)
	}
	normalize.Legacy(doc)
	a, err := emit.Old(doc, opts.TypeName)
	if err != nil {
		return nil, stageErr(SerializeStage, &v, err)
	}
	return a, nil
}

// PatchMetadata sets the description and repository of doc from the
// non-nil arguments.
func PatchMetadata(doc *idl.IDL, description, repository *string) {
	if description != nil {
		if debug.Patch() {
			debug.Logf("patch: metadata.description = %q\n", *description)
		}
		s := *description
		doc.Metadata.Description = &s
	}
	if repository != nil {
		if debug.Patch() {
			debug.Logf("patch: metadata.repository = %q\n", *repository)
		}
		s := *repository
		doc.Metadata.Repository = &s
	}
}
