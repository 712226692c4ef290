package handlers

import (
	"github.com/gofiber/fiber/v2"

	"paymentsvc/internal/catalog"
	"paymentsvc/kit/db"
	"paymentsvc/kit/observability"
)

type Catalog struct {
	catalog *catalog.Service
	logger  *observability.Logger
}

func NewCatalog(svc *catalog.Service, logger *observability.Logger) *Catalog {
	return &Catalog{catalog: svc, logger: logger}
}

type catalogEntryReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type catalogEntryResp struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func catalogStatus(err error) int {
	switch {
	case db.IsNotFound(err):
		return fiber.StatusNotFound
	case db.IsConflict(err):
		return fiber.StatusConflict
	case db.IsInvalid(err):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *Catalog) ListMethods(c *fiber.Ctx) error {
	methods, err := h.catalog.ListMethods(c.UserContext())
	if err != nil {
		return c.Status(catalogStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	out := make([]catalogEntryResp, 0, len(methods))
	for _, m := range methods {
		out = append(out, catalogEntryResp{ID: m.ID, Name: m.Name, Description: m.Description})
	}
	return c.JSON(out)
}

func (h *Catalog) GetMethod(c *fiber.Ctx) error {
	m, err := h.catalog.GetMethodByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(catalogStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(catalogEntryResp{ID: m.ID, Name: m.Name, Description: m.Description})
}

func (h *Catalog) CreateMethod(c *fiber.Ctx) error {
	var req catalogEntryReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid json"})
	}
	m, err := h.catalog.CreateMethod(c.UserContext(), req.Name, req.Description)
	if err != nil {
		return c.Status(catalogStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(catalogEntryResp{ID: m.ID, Name: m.Name, Description: m.Description})
}

func (h *Catalog) UpdateMethod(c *fiber.Ctx) error {
	var req catalogEntryReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid json"})
	}
	m, err := h.catalog.UpdateMethod(c.UserContext(), c.Params("id"), req.Name, req.Description)
	if err != nil {
		return c.Status(catalogStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(catalogEntryResp{ID: m.ID, Name: m.Name, Description: m.Description})
}

func (h *Catalog) DeleteMethod(c *fiber.Ctx) error {
	if err := h.catalog.DeleteMethod(c.UserContext(), c.Params("id")); err != nil {
		return c.Status(catalogStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Catalog) ListStatuses(c *fiber.Ctx) error {
	statuses, err := h.catalog.ListStatuses(c.UserContext())
	if err != nil {
		return c.Status(catalogStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	out := make([]catalogEntryResp, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, catalogEntryResp{ID: s.ID, Name: s.Name, Description: s.Description})
	}
	return c.JSON(out)
}

func (h *Catalog) GetStatus(c *fiber.Ctx) error {
	s, err := h.catalog.GetStatusByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(catalogStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(catalogEntryResp{ID: s.ID, Name: s.Name, Description: s.Description})
}

func (h *Catalog) CreateStatus(c *fiber.Ctx) error {
	var req catalogEntryReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid json"})
	}
	s, err := h.catalog.CreateStatus(c.UserContext(), req.Name, req.Description)
	if err != nil {
		return c.Status(catalogStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(catalogEntryResp{ID: s.ID, Name: s.Name, Description: s.Description})
}

func (h *Catalog) UpdateStatus(c *fiber.Ctx) error {
	var req catalogEntryReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid json"})
	}
	s, err := h.catalog.UpdateStatus(c.UserContext(), c.Params("id"), req.Name, req.Description)
	if err != nil {
		return c.Status(catalogStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(catalogEntryResp{ID: s.ID, Name: s.Name, Description: s.Description})
}

func (h *Catalog) DeleteStatus(c *fiber.Ctx) error {
	if err := h.catalog.DeleteStatus(c.UserContext(), c.Params("id")); err != nil {
		return c.Status(catalogStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
