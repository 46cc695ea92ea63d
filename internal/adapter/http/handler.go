package http

import (
	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/render"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/i18n"
	"resume-builder/pkg/urlutil"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Handler struct {
	store    *usecase.Store
	exporter *usecase.Exporter
	log      zerolog.Logger
}

func NewHandler(store *usecase.Store, exporter *usecase.Exporter, log zerolog.Logger) *Handler {
	return &Handler{store: store, exporter: exporter, log: log.With().Str("component", "http").Logger()}
}

// Register wires all routes onto the app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/resume", h.GetResume)
	app.Get("/templates", h.ListTemplates)
	app.Put("/resume/personal-info", h.UpdatePersonalInfo)
	app.Put("/resume/template", h.UpdateTemplate)
	app.Post("/resume/reset", h.Reset)

	app.Post("/resume/experience", h.AddExperience)
	app.Put("/resume/experience/:id", h.UpdateExperience)
	app.Delete("/resume/experience/:id", h.RemoveExperience)

	app.Post("/resume/education", h.AddEducation)
	app.Put("/resume/education/:id", h.UpdateEducation)
	app.Delete("/resume/education/:id", h.RemoveEducation)

	app.Post("/resume/skills", h.AddSkill)
	app.Put("/resume/skills/:id", h.UpdateSkill)
	app.Delete("/resume/skills/:id", h.RemoveSkill)

	app.Post("/resume/languages", h.AddLanguage)
	app.Put("/resume/languages/:id", h.UpdateLanguage)
	app.Delete("/resume/languages/:id", h.RemoveLanguage)

	app.Post("/resume/social-media", h.AddSocialMedia)
	app.Put("/resume/social-media/:id", h.UpdateSocialMedia)
	app.Delete("/resume/social-media/:id", h.RemoveSocialMedia)

	app.Get("/preview", h.Preview)
	app.Post("/export", h.StartExport)
	app.Get("/export/:id", h.ExportStatus)
	app.Get("/export/:id/download", h.DownloadExport)
}

// translator resolves the request locale; unknown codes fall back to en.
func translator(c *fiber.Ctx) *i18n.Translator {
	return i18n.New(c.Query("lang", "en"))
}

func validationError(c *fiber.Ctx, tr *i18n.Translator, detail string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  tr.T("errors.invalidUrl"),
		"detail": detail,
	})
}

func (h *Handler) GetResume(c *fiber.Ctx) error {
	return c.JSON(h.store.Snapshot())
}

func (h *Handler) ListTemplates(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"templates": render.TemplateNames()})
}

func (h *Handler) UpdatePersonalInfo(c *fiber.Ctx) error {
	tr := translator(c)
	var patch model.PersonalInfoPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if err := model.ValidatePersonalInfoPatch(patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	// the QR link goes through the same normalization as social links
	if patch.QRLink != nil && *patch.QRLink != "" {
		normalized, err := urlutil.Normalize(*patch.QRLink)
		if err != nil {
			return validationError(c, tr, err.Error())
		}
		patch.QRLink = &normalized
	}
	h.store.UpdatePersonalInfo(c.Context(), patch)
	return c.JSON(h.store.Snapshot().PersonalInfo)
}

func (h *Handler) UpdateTemplate(c *fiber.Ctx) error {
	var req struct {
		Template model.Template `json:"template"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	// stored verbatim; renderers fall back to classic for unknown values
	h.store.UpdateTemplate(c.Context(), req.Template)
	return c.JSON(fiber.Map{"template": h.store.Snapshot().Template})
}

func (h *Handler) Reset(c *fiber.Ctx) error {
	h.store.Reset(c.Context())
	return c.JSON(h.store.Snapshot())
}

func (h *Handler) AddExperience(c *fiber.Ctx) error {
	var exp model.Experience
	if err := c.BodyParser(&exp); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	id := h.store.AddExperience(c.Context(), exp)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (h *Handler) UpdateExperience(c *fiber.Ctx) error {
	var patch model.ExperiencePatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	h.store.UpdateExperience(c.Context(), c.Params("id"), patch)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) RemoveExperience(c *fiber.Ctx) error {
	h.store.RemoveExperience(c.Context(), c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) AddEducation(c *fiber.Ctx) error {
	var edu model.Education
	if err := c.BodyParser(&edu); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	id := h.store.AddEducation(c.Context(), edu)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (h *Handler) UpdateEducation(c *fiber.Ctx) error {
	var patch model.EducationPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	h.store.UpdateEducation(c.Context(), c.Params("id"), patch)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) RemoveEducation(c *fiber.Ctx) error {
	h.store.RemoveEducation(c.Context(), c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) AddSkill(c *fiber.Ctx) error {
	var skill model.Skill
	if err := c.BodyParser(&skill); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	id := h.store.AddSkill(c.Context(), skill)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (h *Handler) UpdateSkill(c *fiber.Ctx) error {
	var patch model.SkillPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	h.store.UpdateSkill(c.Context(), c.Params("id"), patch)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) RemoveSkill(c *fiber.Ctx) error {
	h.store.RemoveSkill(c.Context(), c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) AddLanguage(c *fiber.Ctx) error {
	var lang model.LanguageSkill
	if err := c.BodyParser(&lang); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	// proficiency is a closed enumeration at the API boundary
	if !lang.Proficiency.Known() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown proficiency"})
	}
	id := h.store.AddLanguage(c.Context(), lang)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (h *Handler) UpdateLanguage(c *fiber.Ctx) error {
	var patch model.LanguageSkillPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if patch.Proficiency != nil && !patch.Proficiency.Known() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown proficiency"})
	}
	h.store.UpdateLanguage(c.Context(), c.Params("id"), patch)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) RemoveLanguage(c *fiber.Ctx) error {
	h.store.RemoveLanguage(c.Context(), c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) AddSocialMedia(c *fiber.Ctx) error {
	tr := translator(c)
	var link model.SocialLink
	if err := c.BodyParser(&link); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	normalized, err := urlutil.Normalize(link.URL)
	if err != nil {
		return validationError(c, tr, err.Error())
	}
	link.URL = normalized
	id := h.store.AddSocialMedia(c.Context(), link)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (h *Handler) UpdateSocialMedia(c *fiber.Ctx) error {
	tr := translator(c)
	var patch model.SocialLinkPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if patch.URL != nil {
		normalized, err := urlutil.Normalize(*patch.URL)
		if err != nil {
			return validationError(c, tr, err.Error())
		}
		patch.URL = &normalized
	}
	h.store.UpdateSocialMedia(c.Context(), c.Params("id"), patch)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) RemoveSocialMedia(c *fiber.Ctx) error {
	h.store.RemoveSocialMedia(c.Context(), c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

// Preview renders the aggregate through its active template. Until name
// and job title are filled the localized placeholder page is served.
func (h *Handler) Preview(c *fiber.Ctx) error {
	tr := translator(c)
	snap := h.store.Snapshot()

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	if snap.PersonalInfo.Name == "" || snap.PersonalInfo.JobTitle == "" {
		return c.SendString(render.RenderPlaceholder(tr.T("preview.incomplete"), tr.T("preview.fillRequired"), tr.RTL()))
	}

	doc, err := render.BuildDocument(snap, tr)
	if err != nil {
		h.log.Error().Err(err).Msg("building preview document")
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	html, err := render.RenderHTML(doc, false)
	if err != nil {
		h.log.Error().Err(err).Msg("rendering preview")
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.SendString(html)
}

func (h *Handler) StartExport(c *fiber.Ctx) error {
	job := h.exporter.StartExport(h.store.Snapshot(), c.Query("lang", "en"))
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"jobId":  job.ID.String(),
		"status": job.Status,
	})
}

func (h *Handler) ExportStatus(c *fiber.Ctx) error {
	job, ok := h.findJob(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown export"})
	}
	return c.JSON(job)
}

func (h *Handler) DownloadExport(c *fiber.Ctx) error {
	job, ok := h.findJob(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown export"})
	}
	if job.Status != domain.ExportCompleted {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"status": job.Status, "error": job.Error})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+job.FileName+`"`)
	return c.Send(job.PDF)
}

func (h *Handler) findJob(c *fiber.Ctx) (domain.ExportJob, bool) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return domain.ExportJob{}, false
	}
	return h.exporter.Job(id)
}
