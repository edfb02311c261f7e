package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-facing Spanish labels
var FieldLabels = map[string]string{
	// Auth fields
	"Email":           "Email",
	"Password":        "Contraseña",
	"ConfirmPassword": "Confirmar contraseña",

	// Citizen registration / profile
	"FirstName":   "Nombre",
	"LastName":    "Apellido",
	"DateOfBirth": "Fecha de nacimiento",
	"Gender":      "Género",
	"Phone":       "Teléfono",
	"City":        "Ciudad",
	"Department":  "Departamento",
	"ZoneType":    "Tipo de zona",
	"Bio":         "Biografía",
	"Address":     "Dirección",
	"JobStatus":   "Situación laboral",

	// Company / institution
	"CompanyName":     "Nombre de la empresa",
	"Industry":        "Industria",
	"Size":            "Tamaño de la empresa",
	"InstitutionName": "Nombre de la institución",
	"InstitutionType": "Tipo de institución",
	"Website":         "Sitio web",
	"Description":     "Descripción",

	// Skills
	"Name":       "Nombre",
	"Category":   "Categoría",
	"SkillID":    "Habilidad",
	"Level":      "Nivel",
	"YearsOfExp": "Años de experiencia",

	// Education / experience
	"Institution":  "Institución",
	"FieldOfStudy": "Área de estudio",
	"Degree":       "Título",
	"StartDate":    "Fecha de inicio",
	"EndDate":      "Fecha de finalización",
	"Current":      "Actual",
	"Company":      "Empresa",
	"Position":     "Cargo",

	// Certifications
	"Issuer":        "Entidad emisora",
	"IssueDate":     "Fecha de emisión",
	"ExpiryDate":    "Fecha de vencimiento",
	"CredentialURL": "URL de la credencial",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required", "required_without":
		return fmt.Sprintf("%s: Es requerido", label)

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: Debe tener al menos %s caracteres", label, param)
		}
		return fmt.Sprintf("%s: Debe ser como mínimo %s", label, param)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: Debe tener como máximo %s caracteres", label, param)
		}
		return fmt.Sprintf("%s: Debe ser como máximo %s", label, param)

	case "gte":
		return fmt.Sprintf("%s: Debe ser mayor o igual a %s", label, param)

	case "oneof":
		return fmt.Sprintf("%s: Debe ser uno de: %s", label, formatOneOfOptions(param))

	case "email":
		return fmt.Sprintf("%s: Email inválido", label)

	case "url":
		return fmt.Sprintf("%s: URL inválida", label)

	case "datetime":
		return fmt.Sprintf("%s: Fecha inválida (use AAAA-MM-DD)", label)

	case "valid_name":
		return fmt.Sprintf("%s: Solo se permiten letras, espacios y signos comunes (. ' - /)", label)

	case "valid_phone":
		return fmt.Sprintf("%s: Número de teléfono inválido (7-15 dígitos, con o sin +)", label)

	case "no_emoji":
		return fmt.Sprintf("%s: No puede contener emojis ni símbolos especiales", label)

	case "strong_password":
		return fmt.Sprintf("%s: Debe tener al menos 8 caracteres, una mayúscula, una minúscula y un número", label)

	case "not_future_date":
		return fmt.Sprintf("%s: No puede ser una fecha futura", label)

	case "eqfield":
		if e.Field() == "ConfirmPassword" {
			return "Las contraseñas no coinciden"
		}
		return fmt.Sprintf("%s: Debe coincidir con %s", label, getFieldLabel(param))

	default:
		return fmt.Sprintf("%s: Valor inválido (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}

// formatOneOfOptions formats oneof options for display. Quoted options keep their spaces.
func formatOneOfOptions(param string) string {
	var options []string
	for param != "" {
		param = strings.TrimLeft(param, " ")
		if strings.HasPrefix(param, "'") {
			end := strings.Index(param[1:], "'")
			if end < 0 {
				options = append(options, param[1:])
				break
			}
			options = append(options, param[1:end+1])
			param = param[end+2:]
			continue
		}
		next := strings.IndexByte(param, ' ')
		if next < 0 {
			options = append(options, param)
			break
		}
		options = append(options, param[:next])
		param = param[next:]
	}
	return strings.Join(options, ", ")
}
