package controllers

import (
	pkgerrors "github.com/vitrum-studio/vitrum-backend/pkg/errors"
)

// action is the closed set of operation keys the glass endpoint accepts,
// carried as a query parameter on GET and a body field on mutations. Each
// method handler matches its own subset exhaustively; anything else is a
// validation error.
type action string

const (
	actionGlassPackages         action = "glass_packages"
	actionGlassPackage          action = "glass_package"
	actionGlassComponents       action = "glass_components"
	actionGlassComponent        action = "glass_component"
	actionGlassComponentsImport action = "glass_components_import"
	actionPackageComponents     action = "package_components"
	actionPackageComponent      action = "package_component"
	actionComponentAlternative  action = "component_alternative"
	actionSwapMainAlternative   action = "swap_main_alternative"
)

func errUnknownAction(raw string) error {
	return pkgerrors.New(pkgerrors.CodeValidation, "unknown action").
		WithDetails(map[string]any{"action": raw})
}

// actionEnvelope extracts the dispatch key from a mutation body before the
// payload is decoded into its typed request.
type actionEnvelope struct {
	Action string `json:"action" validate:"required"`
}
