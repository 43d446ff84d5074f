package controllers

import "github.com/gin-gonic/gin"

// RegisterPizzaRoutes binds the pizza endpoints on the given router
func RegisterPizzaRoutes(router gin.IRoutes, pc PizzaController) {
	router.GET("/pizzas", pc.GetPizzas)
	router.POST("/buypizza", pc.BuyPizza)
	router.PATCH("/updatepizza/:uuid", pc.UpdatePizza)
	router.DELETE("/deletepizza/:uuid", pc.DeletePizza)
}
