package controllers

import (
	"net/http"

	"github.com/vitrum-studio/vitrum-backend/api/responses"
	"github.com/vitrum-studio/vitrum-backend/api/validators"
	componentsvc "github.com/vitrum-studio/vitrum-backend/internal/components"
	packagesvc "github.com/vitrum-studio/vitrum-backend/internal/packages"
	pkgerrors "github.com/vitrum-studio/vitrum-backend/pkg/errors"
	"github.com/vitrum-studio/vitrum-backend/pkg/logger"
)

// Services bundles the domain services the glass endpoint dispatches into.
type Services struct {
	Packages   packagesvc.Service
	Components componentsvc.Service
}

func (s Services) check() error {
	if s.Packages == nil || s.Components == nil {
		return pkgerrors.New(pkgerrors.CodeInternal, "glass services unavailable")
	}
	return nil
}

// GlassGet serves the read actions keyed by the `action` query parameter.
func GlassGet(svc Services, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.check(); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		raw := r.URL.Query().Get("action")
		ctx := logg.WithAction(r.Context(), raw)

		switch action(raw) {
		case actionGlassPackages:
			activeOnly := validators.ParseQueryBool(r, "active_only")
			withComponents := validators.ParseQueryBool(r, "with_components")
			list, err := svc.Packages.ListPackages(ctx, activeOnly, withComponents)
			if err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			responses.WriteSuccess(w, map[string]any{"packages": list})

		case actionGlassComponents:
			activeOnly := validators.ParseQueryBool(r, "active_only")
			list, err := svc.Components.ListComponents(ctx, activeOnly)
			if err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			responses.WriteSuccess(w, map[string]any{"components": list})

		case actionGlassPackage:
			packageID, err := validators.ParseQueryInt64(r, "package_id")
			if err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			pkg, err := svc.Packages.GetPackage(ctx, packageID)
			if err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			responses.WriteSuccess(w, map[string]any{"package": pkg})

		case actionPackageComponents:
			packageID, err := validators.ParseQueryInt64(r, "package_id")
			if err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			members, err := svc.Packages.GetComponents(ctx, packageID)
			if err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			responses.WriteSuccess(w, map[string]any{"components": members})

		default:
			responses.WriteError(ctx, logg, w, errUnknownAction(raw))
		}
	}
}

// GlassPost serves the create-type actions keyed by the body action field.
func GlassPost(svc Services, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.check(); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		body, envelope, err := readEnvelope(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		ctx := logg.WithAction(r.Context(), envelope.Action)

		switch action(envelope.Action) {
		case actionGlassPackage:
			var payload createPackageRequest
			if err := validators.DecodeJSON(body, &payload); err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			id, err := svc.Packages.CreatePackage(ctx, payload.Package.toInput())
			if err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			responses.WriteSuccess(w, map[string]any{"package_id": id})

		case actionGlassComponent:
			var payload createComponentRequest
			if err := validators.DecodeJSON(body, &payload); err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			id, err := svc.Components.CreateComponent(ctx, payload.Component.toInput())
			if err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			responses.WriteSuccess(w, map[string]any{"component_id": id})

		case actionGlassComponentsImport:
			var payload importComponentsRequest
			if err := validators.DecodeJSON(body, &payload); err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			inputs := make([]componentsvc.ComponentInput, 0, len(payload.Components))
			for _, item := range payload.Components {
				inputs = append(inputs, item.toInput())
			}
			result, err := svc.Components.BulkImport(ctx, inputs)
			if err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			responses.WriteSuccess(w, result)

		case actionPackageComponent:
			var payload membershipRequest
			if err := validators.DecodeJSON(body, &payload); err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			err := svc.Packages.UpsertMembership(ctx, packagesvc.MembershipInput{
				PackageID:   payload.PackageID,
				ComponentID: payload.ComponentID,
				Quantity:    payload.Quantity,
				IsRequired:  payload.IsRequired,
			})
			if err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			responses.WriteSuccess(w, map[string]any{"success": true})

		case actionComponentAlternative:
			var payload alternativeRequest
			if err := validators.DecodeJSON(body, &payload); err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			err := svc.Components.AddAlternative(ctx, payload.ComponentID, payload.AlternativeComponentID, payload.Priority)
			if err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			responses.WriteSuccess(w, map[string]any{"success": true})

		case actionSwapMainAlternative:
			var payload swapRequest
			if err := validators.DecodeJSON(body, &payload); err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			err := svc.Packages.SwapMainAlternative(ctx, payload.PackageID, payload.CurrentMainID, payload.NewMainID)
			if err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			responses.WriteSuccess(w, map[string]any{"success": true})

		default:
			responses.WriteError(ctx, logg, w, errUnknownAction(envelope.Action))
		}
	}
}

// GlassPut serves the update actions keyed by the body action field.
func GlassPut(svc Services, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.check(); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		body, envelope, err := readEnvelope(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		ctx := logg.WithAction(r.Context(), envelope.Action)

		switch action(envelope.Action) {
		case actionGlassPackage:
			var payload updatePackageRequest
			if err := validators.DecodeJSON(body, &payload); err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			if err := svc.Packages.UpdatePackage(ctx, payload.Package.PackageID, payload.Package.toInput()); err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			responses.WriteSuccess(w, map[string]any{"success": true})

		case actionGlassComponent:
			var payload updateComponentRequest
			if err := validators.DecodeJSON(body, &payload); err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			if err := svc.Components.UpdateComponent(ctx, payload.Component.ComponentID, payload.Component.toInput()); err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			responses.WriteSuccess(w, map[string]any{"success": true})

		default:
			responses.WriteError(ctx, logg, w, errUnknownAction(envelope.Action))
		}
	}
}

// GlassDelete serves the delete actions keyed by the body action field.
func GlassDelete(svc Services, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.check(); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		body, envelope, err := readEnvelope(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		ctx := logg.WithAction(r.Context(), envelope.Action)

		switch action(envelope.Action) {
		case actionGlassPackage:
			var payload deletePackageRequest
			if err := validators.DecodeJSON(body, &payload); err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			if err := svc.Packages.DeletePackage(ctx, payload.PackageID); err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			responses.WriteSuccess(w, map[string]any{"success": true})

		case actionGlassComponent:
			var payload deleteComponentRequest
			if err := validators.DecodeJSON(body, &payload); err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			// Deactivation is the default; a hard delete must be asked for
			// and only succeeds while the component is unreferenced.
			if payload.Force {
				err = svc.Components.DeleteComponent(ctx, payload.ComponentID)
			} else {
				err = svc.Components.DeactivateComponent(ctx, payload.ComponentID)
			}
			if err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			responses.WriteSuccess(w, map[string]any{"success": true})

		case actionComponentAlternative:
			var payload alternativeRequest
			if err := validators.DecodeJSON(body, &payload); err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			if err := svc.Components.RemoveAlternative(ctx, payload.ComponentID, payload.AlternativeComponentID); err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			responses.WriteSuccess(w, map[string]any{"success": true})

		case actionPackageComponent:
			var payload deleteMembershipRequest
			if err := validators.DecodeJSON(body, &payload); err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			if err := svc.Packages.RemoveMembership(ctx, payload.MembershipID); err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			responses.WriteSuccess(w, map[string]any{"success": true})

		default:
			responses.WriteError(ctx, logg, w, errUnknownAction(envelope.Action))
		}
	}
}

func readEnvelope(r *http.Request) ([]byte, actionEnvelope, error) {
	body, err := validators.ReadBody(r)
	if err != nil {
		return nil, actionEnvelope{}, err
	}
	var envelope actionEnvelope
	if err := validators.DecodeJSON(body, &envelope); err != nil {
		return nil, actionEnvelope{}, err
	}
	return body, envelope, nil
}
