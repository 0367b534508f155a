package handler

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Trans is the global validator translator, shared with response.go.
var Trans ut.Translator

// InitTrans wires translated validation messages into gin's binding
// validator. Field names in messages follow the json tag, not the Go
// struct field name.
func InitTrans(locale string) (err error) {
	if binding.Validator == nil {
		binding.Validator = &defaultValidator{validator: validator.New()}
	}

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		enT := en.New()
		uni := ut.New(enT, enT)

		var ok bool
		Trans, ok = uni.GetTranslator(locale)
		if !ok {
			return fmt.Errorf("uni.GetTranslator(%s) failed", locale)
		}

		err = en_translations.RegisterDefaultTranslations(v, Trans)
	}
	return
}

// RemoveTopStruct strips the struct-name prefix from translated field
// keys ("RegisterRequest.email" becomes "email").
func RemoveTopStruct(fields map[string]string) map[string]string {
	res := make(map[string]string)
	for field, err := range fields {
		res[field[strings.Index(field, ".")+1:]] = err
	}
	return res
}

type defaultValidator struct {
	validator *validator.Validate
}

func (v *defaultValidator) ValidateStruct(obj interface{}) error {
	return v.validator.Struct(obj)
}

func (v *defaultValidator) Engine() interface{} {
	return v.validator
}
