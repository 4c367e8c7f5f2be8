package http

import (
	"encoding/json"
	"errors"
	"reflect"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-manage/internal/domain"
)

// decodeBody parsea el cuerpo JSON de la petición. Un valor con tipo incorrecto
// en un campo nombrado se convierte en FieldErrors atribuido a ese campo; un
// cuerpo sintácticamente inválido se devuelve tal cual para la respuesta genérica.
func decodeBody(c *fiber.Ctx, out any) error {
	err := c.BodyParser(out)
	if err == nil {
		return nil
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		fieldErrs := domain.FieldErrors{}
		fieldErrs.Add(typeErr.Field, typeMismatchMessage(typeErr.Type))
		return fieldErrs
	}
	return err
}

func typeMismatchMessage(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "A valid integer is required."
	case reflect.Float32, reflect.Float64:
		return "A valid number is required."
	case reflect.String:
		return "Not a valid string."
	case reflect.Bool:
		return "Must be a valid boolean."
	default:
		return "Invalid value."
	}
}
