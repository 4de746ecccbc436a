// Package validate checks request payloads before they are sent and reports
// violations as envelope error fields.
package validate

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/sellerdash/pkg/envelope"
)

// Message is the envelope message used for any payload rejected locally.
const Message = "Dados inválidos. Verifique os campos e tente novamente."

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}
		return tag
	})
	// money fields compare as numbers so gt/gte/required apply to them
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// Struct validates a payload. It returns nil when the payload is valid.
func Struct(payload any) envelope.ErrorFields {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return envelope.ErrorFields{{Key: "payload", Error: "formato inválido"}}
	}

	fields := make(envelope.ErrorFields, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, envelope.ErrorField{
			Key:   fieldPath(fe),
			Error: validationMessage(fe),
			Value: fe.Value(),
		})
	}
	return fields
}

func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return fe.Field()
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obrigatório"
	case "min":
		return fmt.Sprintf("deve ter no mínimo %s", fe.Param())
	case "max":
		return fmt.Sprintf("deve ter no máximo %s", fe.Param())
	case "gt":
		return fmt.Sprintf("deve ser maior que %s", fe.Param())
	case "gte":
		return fmt.Sprintf("deve ser maior ou igual a %s", fe.Param())
	case "lt":
		return fmt.Sprintf("deve ser menor que %s", fe.Param())
	case "lte":
		return fmt.Sprintf("deve ser menor ou igual a %s", fe.Param())
	case "len":
		return fmt.Sprintf("deve ter exatamente %s caracteres", fe.Param())
	case "oneof":
		return fmt.Sprintf("deve ser um de: %s", fe.Param())
	case "email":
		return "deve ser um e-mail válido"
	case "url":
		return "deve ser uma URL válida"
	}
	return "valor inválido"
}
