package request

import (
	"regexp"
	"strings"

	"servicevale/internal/domain/entities"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	contactNoPattern = regexp.MustCompile(`^[0-9]{10}$`)
	aadharPattern    = regexp.MustCompile(`^[0-9]{12}$`)
	panPattern       = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
)

// RegisterValidations installs the Indian id-number formats (10-digit mobile,
// 12-digit Aadhaar, PAN) on gin's binding validator. Call once at startup.
func RegisterValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("contactno", matches(contactNoPattern))
	_ = v.RegisterValidation("aadhar", matches(aadharPattern))
	_ = v.RegisterValidation("pan", matches(panPattern))
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

type EngineerRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	ContactNo string `json:"contactNo" binding:"required,contactno"`
	Address   string `json:"address" binding:"required"`
	AadharNo  string `json:"aadharNo" binding:"required,aadhar"`
	PanNo     string `json:"panNo" binding:"required,pan"`
	City      string `json:"city" binding:"required"`
}

func (r EngineerRequest) ToEntity() entities.Engineer {
	return entities.Engineer{
		Name:      strings.TrimSpace(r.Name),
		Email:     strings.TrimSpace(r.Email),
		ContactNo: r.ContactNo,
		Address:   strings.TrimSpace(r.Address),
		AadharNo:  r.AadharNo,
		PanNo:     r.PanNo,
		City:      strings.TrimSpace(r.City),
	}
}
