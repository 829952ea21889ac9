package http

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/sib-bolivia/aranceles-api/internal/application/dto"
	"github.com/sib-bolivia/aranceles-api/internal/application/usecase"
	"github.com/sib-bolivia/aranceles-api/internal/domain"
)

// ArancelHandler maneja las peticiones HTTP del cálculo de aranceles.
type ArancelHandler struct {
	arancelUC  *usecase.ArancelUseCase
	opcionesUC *usecase.OpcionesUseCase
	validate   *validator.Validate
}

// NewArancelHandler construye el handler.
func NewArancelHandler(arancelUC *usecase.ArancelUseCase, opcionesUC *usecase.OpcionesUseCase) *ArancelHandler {
	return &ArancelHandler{
		arancelUC:  arancelUC,
		opcionesUC: opcionesUC,
		validate:   validator.New(),
	}
}

// Calcular godoc
// @Summary      Calcular arancel profesional
// @Tags         aranceles
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CalcularArancelRequest  true  "Datos del profesional"
// @Success      200   {object}  dto.ArancelResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/aranceles/calcular [post]
func (h *ArancelHandler) Calcular(c *fiber.Ctx) error {
	in, ok, errResp := h.parseSolicitud(c)
	if !ok {
		return errResp
	}
	out, err := h.arancelUC.Calcular(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Tarifario godoc
// @Summary      Calcular arancel y tarifario de trabajos escalado
// @Tags         aranceles
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CalcularArancelRequest  true  "Datos del profesional"
// @Success      200   {object}  dto.TarifarioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/aranceles/tarifario [post]
func (h *ArancelHandler) Tarifario(c *fiber.Ctx) error {
	in, ok, errResp := h.parseSolicitud(c)
	if !ok {
		return errResp
	}
	out, err := h.arancelUC.Tarifario(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Opciones godoc
// @Summary      Listar formaciones y actividades vigentes
// @Tags         aranceles
// @Produce      json
// @Success      200  {object}  dto.OpcionesResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/aranceles/opciones [get]
func (h *ArancelHandler) Opciones(c *fiber.Ctx) error {
	out, err := h.opcionesUC.Listar(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// parseSolicitud decodifica y valida el cuerpo. Si ok es false, la respuesta
// de error ya fue escrita y el handler debe retornar errResp tal cual.
func (h *ArancelHandler) parseSolicitud(c *fiber.Ctx) (in dto.CalcularArancelRequest, ok bool, errResp error) {
	if err := c.BodyParser(&in); err != nil {
		return in, false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo inválido",
		})
	}
	if err := h.validate.Struct(&in); err != nil {
		var detalles []string
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			for _, fe := range vErrs {
				detalles = append(detalles, mensajeValidacion(fe))
			}
		}
		return in, false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDACION", Message: "solicitud inválida", Details: detalles,
		})
	}
	return in, true, nil
}

func mensajeValidacion(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s es requerido", fe.Field())
	case "min":
		return fmt.Sprintf("%s debe ser al menos %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s debe ser uno de: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s no cumple la regla %s", fe.Field(), fe.Tag())
	}
}

// responderError traduce errores de dominio a HTTP: entradas fuera de los
// conjuntos válidos son 400; un factor ausente en el seed es 500 porque
// delata un problema de integridad de datos, no un error del cliente.
func responderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrDepartamentoInvalido),
		errors.Is(err, domain.ErrUbicacionInvalida),
		errors.Is(err, domain.ErrFormacionInvalida),
		errors.Is(err, domain.ErrActividadInvalida),
		errors.Is(err, domain.ErrAntiguedadInvalida):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDACION", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrFactorNoEncontrado):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "FACTOR_NO_ENCONTRADO", Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
}
