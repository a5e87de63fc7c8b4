package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"app/database"
	"app/models"
	"app/utils"

	"github.com/gofiber/fiber/v2"
)

// HandleListBasics returns every site configuration record.
// GET /basic
func (h *Handler) HandleListBasics(c *fiber.Ctx) error {
	basics, err := h.Basics.ListBasics(context.Background())
	if err != nil {
		log.Printf("Error fetching basic data: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error fetching basic data"})
	}

	return c.JSON(basics)
}

// HandleGetBasicByID returns a single site configuration record.
// GET /basic/:id
func (h *Handler) HandleGetBasicByID(c *fiber.Ctx) error {
	id := c.Params("id")

	basic, err := h.Basics.GetBasic(context.Background(), id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Basic data not found"})
		}
		log.Printf("Error fetching basic data %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error fetching basic data"})
	}

	return c.JSON(basic)
}

// HandleCreateBasic creates a site configuration record from a multipart
// form, with optional logo and heroImage file parts.
// POST /basic
func (h *Handler) HandleCreateBasic(c *fiber.Ctx) error {
	in, err := h.parseBasicInput(c)
	if err != nil {
		log.Printf("Error creating basic data: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error creating basic data"})
	}

	basic, err := h.Basics.CreateBasic(context.Background(), in)
	if err != nil {
		log.Printf("Error creating basic data: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error creating basic data"})
	}

	return c.Status(fiber.StatusCreated).JSON(basic)
}

// HandleUpdateBasic replaces every field of a record from a multipart form.
// An image part left out of the form clears the stored path: updates are
// full replaces, so callers resend the whole document.
// PUT /basic/:id
func (h *Handler) HandleUpdateBasic(c *fiber.Ctx) error {
	id := c.Params("id")

	in, err := h.parseBasicInput(c)
	if err != nil {
		log.Printf("Error updating basic data %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error updating basic data"})
	}

	basic, err := h.Basics.UpdateBasic(context.Background(), id, in)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Basic data not found"})
		}
		log.Printf("Error updating basic data %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error updating basic data"})
	}

	return c.JSON(basic)
}

// HandleDeleteBasic removes a site configuration record.
// DELETE /basic/:id
func (h *Handler) HandleDeleteBasic(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.Basics.DeleteBasic(context.Background(), id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Basic data not found"})
		}
		log.Printf("Error deleting basic data %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error deleting basic data"})
	}

	return c.JSON(fiber.Map{"message": "Basic data deleted successfully"})
}

// parseBasicInput reads the full field set from the multipart form. The
// navbar field is parsed before any file is written to disk, so a malformed
// value fails the request without side effects. File saves happen before the
// row update; there is no compensation if the update later fails.
func (h *Handler) parseBasicInput(c *fiber.Ctx) (models.BasicInput, error) {
	in := models.BasicInput{Navbar: models.StringSlice{}}

	if raw := c.FormValue("navbar"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &in.Navbar); err != nil {
			return in, fmt.Errorf("parsing navbar: %w", err)
		}
	}

	in.CountTitle1 = utils.StringPtrOrNil(c.FormValue("count_title1"))
	in.CountValue1 = utils.StringPtrOrNil(c.FormValue("count_value1"))
	in.CountTitle2 = utils.StringPtrOrNil(c.FormValue("count_title2"))
	in.CountValue2 = utils.StringPtrOrNil(c.FormValue("count_value2"))
	in.CountTitle3 = utils.StringPtrOrNil(c.FormValue("count_title3"))
	in.CountValue3 = utils.StringPtrOrNil(c.FormValue("count_value3"))
	in.CountTitle4 = utils.StringPtrOrNil(c.FormValue("count_title4"))
	in.CountValue4 = utils.StringPtrOrNil(c.FormValue("count_value4"))
	in.Headline = utils.StringPtrOrNil(c.FormValue("headline"))
	in.Desc = utils.StringPtrOrNil(c.FormValue("desc"))

	if file, err := c.FormFile("logo"); err == nil {
		path, err := h.Files.Save(file)
		if err != nil {
			return in, fmt.Errorf("saving logo: %w", err)
		}
		in.Logo = &path
	}

	if file, err := c.FormFile("heroImage"); err == nil {
		path, err := h.Files.Save(file)
		if err != nil {
			return in, fmt.Errorf("saving heroImage: %w", err)
		}
		in.HeroImage = &path
	}

	return in, nil
}
