package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	users := app.Group("/api/users/:username")
	users.Get("/today", handler.GetToday)
	users.Get("/streak", handler.GetStreak)
	users.Get("/history", handler.GetHistory)
	users.Get("/export/json", handler.ExportJSON)
	users.Get("/export/csv", handler.ExportCSV)

	days := users.Group("/days/:date")
	days.Get("", handler.GetDay)
	days.Delete("", handler.DeleteDay)
	days.Put("/tasks/:task", handler.UpdateTask)
	days.Post("/custom-tasks", handler.AddCustomTask)
	days.Put("/custom-tasks/:id", handler.UpdateCustomTask)
	days.Delete("/custom-tasks/:id", handler.DeleteCustomTask)
}
