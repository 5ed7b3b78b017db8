package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	catalogdomain "github.com/smallbiznis/threadline/internal/catalog/domain"
	customizationdomain "github.com/smallbiznis/threadline/internal/customization/domain"
	memberdomain "github.com/smallbiznis/threadline/internal/member/domain"
	orderdomain "github.com/smallbiznis/threadline/internal/order/domain"
	reportdomain "github.com/smallbiznis/threadline/internal/report/domain"
	websitedomain "github.com/smallbiznis/threadline/internal/website/domain"
	"go.uber.org/zap"
)

// ErrorHandlingMiddleware converts handler errors into the JSON envelope.
// Handlers record failures with c.Error and abort; the last error wins.
func ErrorHandlingMiddleware(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			log.Error("request failed",
				zap.String("path", c.FullPath()),
				zap.Error(err),
			)
		}
		respondErr(c, status, err.Error())
	}
}

var notFoundErrs = []error{
	orderdomain.ErrNotFound,
	catalogdomain.ErrNotFound,
	customizationdomain.ErrNotFound,
	websitedomain.ErrNotFound,
	memberdomain.ErrNotFound,
}

var badRequestErrs = []error{
	orderdomain.ErrInvalidID,
	orderdomain.ErrInvalidCustomer,
	orderdomain.ErrInvalidAmount,
	orderdomain.ErrInvalidStatus,
	catalogdomain.ErrInvalidID,
	catalogdomain.ErrInvalidName,
	catalogdomain.ErrInvalidPrice,
	catalogdomain.ErrInvalidCategory,
	catalogdomain.ErrInvalidColorCode,
	catalogdomain.ErrInvalidFontFile,
	customizationdomain.ErrInvalidID,
	customizationdomain.ErrInvalidCustomer,
	customizationdomain.ErrInvalidProduct,
	websitedomain.ErrInvalidID,
	websitedomain.ErrInvalidMenuItem,
	websitedomain.ErrMenuIDsMissing,
	websitedomain.ErrMenuEmpty,
	websitedomain.ErrInvalidTitle,
	websitedomain.ErrInvalidPosition,
	websitedomain.ErrInvalidStatus,
	websitedomain.ErrInvalidCategory,
	websitedomain.ErrInvalidPrice,
	websitedomain.ErrInvalidSKU,
	websitedomain.ErrInvalidText,
	websitedomain.ErrInvalidCurrency,
	websitedomain.ErrInvalidTaxType,
	websitedomain.ErrInvalidLanguage,
	websitedomain.ErrInvalidTaxRate,
	memberdomain.ErrInvalidID,
	memberdomain.ErrInvalidEmail,
	memberdomain.ErrInvalidUsername,
	memberdomain.ErrInvalidPassword,
	memberdomain.ErrInvalidRole,
	memberdomain.ErrInvalidStatus,
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, reportdomain.ErrReportGeneration):
		return http.StatusInternalServerError
	case errors.Is(err, memberdomain.ErrUnauthorized),
		errors.Is(err, memberdomain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, memberdomain.ErrNotApproved),
		errors.Is(err, catalogdomain.ErrWrongPassword),
		errors.Is(err, catalogdomain.ErrCategoryLocked):
		return http.StatusForbidden
	case errors.Is(err, memberdomain.ErrEmailTaken):
		return http.StatusConflict
	}

	for _, target := range notFoundErrs {
		if errors.Is(err, target) {
			return http.StatusNotFound
		}
	}
	for _, target := range badRequestErrs {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}
