package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-shop-api/internal/metrics"
	"github.com/franciscosanchezn/pizza-shop-api/internal/models"
	"github.com/franciscosanchezn/pizza-shop-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// PizzaController handles HTTP requests related to pizzas
type PizzaController interface {
	// GetPizzas lists every pizza
	GetPizzas(c *gin.Context)
	// BuyPizza creates a new pizza
	BuyPizza(c *gin.Context)
	// UpdatePizza marks an existing pizza as updated
	UpdatePizza(c *gin.Context)
	// DeletePizza removes a pizza by its uuid
	DeletePizza(c *gin.Context)
}

// OperationRecorder receives the outcome of every pizza operation
type OperationRecorder interface {
	RecordPizzaOperation(operation, outcome string)
}

type controller struct {
	service  services.PizzaService
	log      logrus.FieldLogger
	recorder OperationRecorder
	newID    func() string
}

// NewPizzaController creates a new instance of PizzaController.
// recorder may be nil when metrics are disabled.
func NewPizzaController(service services.PizzaService, log logrus.FieldLogger, recorder OperationRecorder) *controller {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &controller{service: service, log: log, recorder: recorder, newID: models.NewPizzaID}
}

// GetPizzas godoc
// @Summary List pizzas
// @Description Get every pizza in the shop. An empty shop is reported as an error.
// @Tags pizzas
// @Produce json
// @Success 200 {array} models.Pizza
// @Failure 404 {object} models.APIError "No pizzas found"
// @Router /pizzas [get]
func (c *controller) GetPizzas(ctx *gin.Context) {
	pizzas, err := c.service.GetAllPizzas(ctx.Request.Context())
	if err != nil || len(pizzas) == 0 {
		c.fail(ctx, "list", models.NoPizzasFound, logrus.Fields{"error": err})
		return
	}
	c.record("list", metrics.OutcomeSuccess)
	ctx.JSON(http.StatusOK, pizzas)
}

// BuyPizza godoc
// @Summary Buy a pizza
// @Description Create a new pizza with a server generated uuid
// @Tags pizzas
// @Accept json
// @Produce json
// @Param pizza body models.BuyPizzaRequest true "Pizza to buy"
// @Success 201 {object} models.Pizza
// @Failure 500 {object} models.APIError "Pizza creation failure"
// @Router /buypizza [post]
func (c *controller) BuyPizza(ctx *gin.Context) {
	var req models.BuyPizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.fail(ctx, "buy", models.PizzaCreationFailure, logrus.Fields{"error": err, "reason": "validation"})
		return
	}

	pizza := models.NewPizza(c.newID(), req.PizzaName)
	created, err := c.service.AddPizza(ctx.Request.Context(), pizza)
	if err != nil {
		c.fail(ctx, "buy", models.PizzaCreationFailure, logrus.Fields{"error": err, "uuid": pizza.UUID})
		return
	}

	c.log.WithFields(logrus.Fields{"uuid": created.UUID, "pizza_name": created.PizzaName}).Info("Pizza bought")
	c.record("buy", metrics.OutcomeSuccess)
	ctx.JSON(http.StatusCreated, created)
}

// UpdatePizza godoc
// @Summary Update a pizza
// @Description Mark a pizza as updated. No body is accepted.
// @Tags pizzas
// @Produce json
// @Param uuid path string true "Pizza uuid"
// @Success 200 {object} models.Pizza
// @Failure 404 {object} models.APIError "No such pizza found"
// @Router /updatepizza/{uuid} [patch]
func (c *controller) UpdatePizza(ctx *gin.Context) {
	var uri models.PizzaURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		c.fail(ctx, "update", models.NoSuchPizzaFound, logrus.Fields{"error": err})
		return
	}

	updated, err := c.service.UpdatePizza(ctx.Request.Context(), uri.UUID)
	if err != nil {
		c.fail(ctx, "update", models.NoSuchPizzaFound, logrus.Fields{"error": err, "uuid": uri.UUID})
		return
	}
	c.record("update", metrics.OutcomeSuccess)
	ctx.JSON(http.StatusOK, updated)
}

// DeletePizza godoc
// @Summary Delete a pizza
// @Description Delete a pizza by its uuid and return its last known value
// @Tags pizzas
// @Produce json
// @Param uuid path string true "Pizza uuid"
// @Success 200 {object} models.Pizza
// @Failure 404 {object} models.APIError "No such pizza found"
// @Router /deletepizza/{uuid} [delete]
func (c *controller) DeletePizza(ctx *gin.Context) {
	var uri models.PizzaURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		c.fail(ctx, "delete", models.NoSuchPizzaFound, logrus.Fields{"error": err})
		return
	}

	deleted, err := c.service.DeletePizza(ctx.Request.Context(), uri.UUID)
	if err != nil {
		c.fail(ctx, "delete", models.NoSuchPizzaFound, logrus.Fields{"error": err, "uuid": uri.UUID})
		return
	}

	c.log.WithField("uuid", deleted.UUID).Info("Pizza deleted")
	c.record("delete", metrics.OutcomeSuccess)
	ctx.JSON(http.StatusOK, deleted)
}

// fail logs the cause and answers with the error kind; the cause never reaches the client
func (c *controller) fail(ctx *gin.Context, operation string, kind models.PizzaError, fields logrus.Fields) {
	c.log.WithFields(fields).WithField("operation", operation).Warn(kind.Error())
	c.record(operation, metrics.OutcomeFailure)
	_ = ctx.Error(kind)
	ctx.AbortWithStatusJSON(kind.StatusCode(), kind.Response())
}

func (c *controller) record(operation, outcome string) {
	if c.recorder != nil {
		c.recorder.RecordPizzaOperation(operation, outcome)
	}
}
