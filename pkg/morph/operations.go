// Package morph: authoritative registry of facade operations.
//
// This file mirrors the operations implemented in Apply in
// pkg/morph/facade.go. Keep this list up-to-date when you add or modify
// operations so callers (host adapters, docs, help text) can read a
// single source of truth.

package morph

// OperationSpec describes a single facade operation. Fields are textual
// and intended for host UI/help rather than machine-enforced typing.
type OperationSpec struct {
	Op          MorphOp
	Name        string
	Description string
}

// Operations is the authoritative list of operations implemented by the
// facade. Keep this synchronized with Apply in pkg/morph/facade.go.
var Operations = []OperationSpec{
	{
		Op:          Erosion,
		Name:        "erosion",
		Description: "Minimum of the image over the structuring element footprint.",
	},
	{
		Op:          Dilation,
		Name:        "dilation",
		Description: "Maximum of the image over the structuring element footprint.",
	},
	{
		Op:          Opening,
		Name:        "opening",
		Description: "Erosion followed by dilation with the reversed element; removes bright structures smaller than the element.",
	},
	{
		Op:          Closing,
		Name:        "closing",
		Description: "Dilation followed by erosion with the reversed element; removes dark structures smaller than the element.",
	},
	{
		Op:          WhiteTopHat,
		Name:        "whiteTopHat",
		Description: "Image minus its opening; keeps bright structures smaller than the element.",
	},
	{
		Op:          BlackTopHat,
		Name:        "blackTopHat",
		Description: "Closing minus the image; keeps dark structures smaller than the element.",
	},
	{
		Op:          Gradient,
		Name:        "gradient",
		Description: "Dilation minus erosion; highlights value transitions.",
	},
	{
		Op:          Laplacian,
		Name:        "laplacian",
		Description: "External minus internal gradient, shifted by half the value range so flat regions render mid-grey.",
	},
	{
		Op:          InternalGradient,
		Name:        "internalGradient",
		Description: "Image minus its erosion; inner edge of bright structures.",
	},
	{
		Op:          ExternalGradient,
		Name:        "externalGradient",
		Description: "Dilation minus the image; outer edge of bright structures.",
	},
}
