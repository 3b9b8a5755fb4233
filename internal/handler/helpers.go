package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/rkashyapa/automanage-industrial-hub/internal/apierror"
	"github.com/rkashyapa/automanage-industrial-hub/internal/bom"
	"github.com/rkashyapa/automanage-industrial-hub/internal/service"
	"github.com/rkashyapa/automanage-industrial-hub/internal/timesheet"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respondError maps domain errors onto HTTP statuses. Anything unrecognized
// is a 500 with a generic body; the error detail stays in the logs.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, bom.ErrCategoryNotFound),
		errors.Is(err, bom.ErrPartNotFound),
		errors.Is(err, timesheet.ErrUnknownWeek),
		errors.Is(err, timesheet.ErrEngineerNotFound),
		errors.Is(err, service.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case errors.Is(err, bom.ErrDuplicateCategory),
		errors.Is(err, bom.ErrDuplicatePartID),
		errors.Is(err, service.ErrDuplicateProject):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	case errors.Is(err, bom.ErrInvalidPart),
		errors.Is(err, bom.ErrInvalidQuantity),
		errors.Is(err, bom.ErrInvalidVendor),
		errors.Is(err, bom.ErrVendorIndexOutOfRange),
		errors.Is(err, timesheet.ErrNegativeHours),
		errors.Is(err, timesheet.ErrEmptyName):
		c.JSON(http.StatusUnprocessableEntity, apierror.New(err.Error()))
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Internal server error"))
	}
}
