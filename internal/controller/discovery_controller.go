package controller

import (
	"quickie-be/internal/dto"
	"quickie-be/internal/pkg/serverutils"
	"quickie-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDiscoveryController interface {
	RegisterRoutes(r fiber.Router)
	Recommendations(ctx *fiber.Ctx) error
	Insights(ctx *fiber.Ctx) error
	Profile(ctx *fiber.Ctx) error
}

type discoveryController struct {
	recommendationService service.IRecommendationService
	insightsService       service.IInsightsService
}

func NewDiscoveryController(
	recommendationService service.IRecommendationService,
	insightsService service.IInsightsService,
) IDiscoveryController {
	return &discoveryController{
		recommendationService: recommendationService,
		insightsService:       insightsService,
	}
}

func (c *discoveryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/discovery/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/recommendations", c.Recommendations)
	h.Get("/insights", c.Insights)
	h.Get("/profile", c.Profile)
}

func (c *discoveryController) Recommendations(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var query dto.RecommendationsQuery
	if err := ctx.QueryParser(&query); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(query); err != nil {
		return err
	}

	res, err := c.recommendationService.Recommend(ctx.Context(), userId, &query)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get recommendations", res))
}

func (c *discoveryController) Insights(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var query dto.InsightsQuery
	if err := ctx.QueryParser(&query); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(query); err != nil {
		return err
	}

	res, err := c.insightsService.Summary(ctx.Context(), userId, &query)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get insights", res))
}

func (c *discoveryController) Profile(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.recommendationService.Profile(ctx.Context(), userId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get taste profile", res))
}
