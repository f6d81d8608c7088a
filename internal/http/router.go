package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"rental-service/internal/storage"
)

func NewRouter(handler *Handler, authMiddleware gin.HandlerFunc, env, uploadDir string) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"*"},
		ExposeHeaders:   []string{"Content-Type", "Content-Disposition"},
		MaxAge:          12 * time.Hour,
	}))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Stored attachments are served straight from the configured upload
	// directory under the fixed public prefix.
	router.Static(storage.PublicPrefix, uploadDir)

	router.POST("/api/v1/auth/register", handler.register)
	router.POST("/api/v1/auth/login", handler.login)

	protected := router.Group("/api/v1")
	protected.Use(authMiddleware)
	{
		protected.GET("/auth/me", handler.me)
		protected.PUT("/auth/password", handler.changePassword)
		protected.PUT("/auth/username", handler.updateUsername)

		protected.GET("/customers", handler.listCustomers)
		protected.GET("/customers/:id", handler.getCustomer)
		protected.POST("/customers", handler.createCustomer)
		protected.PUT("/customers/:id", handler.updateCustomer)
		protected.DELETE("/customers/:id", handler.deleteCustomer)
		protected.DELETE("/customers/:id/documents", handler.removeCustomerDocument)

		protected.GET("/vehicles", handler.listVehicles)
		protected.GET("/vehicles/:id", handler.getVehicle)
		protected.POST("/vehicles", handler.createVehicle)
		protected.PUT("/vehicles/:id", handler.updateVehicle)
		protected.DELETE("/vehicles/:id", handler.deleteVehicle)
		protected.DELETE("/vehicles/:id/documents", handler.removeVehicleDocument)

		protected.GET("/contracts", handler.listContracts)
		protected.GET("/contracts/:id", handler.getContract)
		protected.POST("/contracts", handler.createContract)
		protected.PUT("/contracts/:id", handler.updateContract)
		protected.DELETE("/contracts/:id", handler.deleteContract)
		protected.DELETE("/contracts/:id/documents", handler.removeContractDocument)

		protected.GET("/reservations", handler.listReservations)
		protected.GET("/reservations/:id", handler.getReservation)
		protected.POST("/reservations", handler.createReservation)
		protected.PUT("/reservations/:id", handler.updateReservation)
		protected.DELETE("/reservations/:id", handler.deleteReservation)

		protected.GET("/factures", handler.listFactures)
		protected.GET("/factures/:id", handler.getFacture)
		protected.POST("/factures", handler.createFacture)
		protected.PUT("/factures/:id", handler.updateFacture)
		protected.DELETE("/factures/:id", handler.deleteFacture)
		protected.DELETE("/factures/:id/documents", handler.removeFactureDocument)

		protected.GET("/payments", handler.listPayments)
		protected.GET("/payments/:id", handler.getPayment)
		protected.POST("/payments", handler.createPayment)
		protected.PUT("/payments/:id", handler.updatePayment)
		protected.DELETE("/payments/:id", handler.deletePayment)
		protected.DELETE("/payments/:id/documents", handler.removePaymentDocument)

		protected.GET("/traites", handler.listTraites)
		protected.GET("/traites/:id", handler.getTraite)
		protected.POST("/traites", handler.createTraite)
		protected.PUT("/traites/:id", handler.updateTraite)
		protected.DELETE("/traites/:id", handler.deleteTraite)
		protected.DELETE("/traites/:id/documents", handler.removeTraiteDocument)

		protected.GET("/infractions", handler.listInfractions)
		protected.GET("/infractions/:id", handler.getInfraction)
		protected.POST("/infractions", handler.createInfraction)
		protected.PUT("/infractions/:id", handler.updateInfraction)
		protected.DELETE("/infractions/:id", handler.deleteInfraction)
		protected.DELETE("/infractions/:id/documents", handler.removeInfractionDocument)

		protected.GET("/accidents", handler.listAccidents)
		protected.GET("/accidents/:id", handler.getAccident)
		protected.POST("/accidents", handler.createAccident)
		protected.PUT("/accidents/:id", handler.updateAccident)
		protected.DELETE("/accidents/:id", handler.deleteAccident)
		protected.DELETE("/accidents/:id/documents", handler.removeAccidentDocument)

		protected.GET("/charges", handler.listCharges)
		protected.GET("/charges/:id", handler.getCharge)
		protected.POST("/charges", handler.createCharge)
		protected.PUT("/charges/:id", handler.updateCharge)
		protected.DELETE("/charges/:id", handler.deleteCharge)
		protected.DELETE("/charges/:id/documents", handler.removeChargeDocument)

		protected.GET("/interventions", handler.listInterventions)
		protected.GET("/interventions/:id", handler.getIntervention)
		protected.POST("/interventions", handler.createIntervention)
		protected.PUT("/interventions/:id", handler.updateIntervention)
		protected.DELETE("/interventions/:id", handler.deleteIntervention)
		protected.DELETE("/interventions/:id/documents", handler.removeInterventionDocument)

		protected.GET("/inspections", handler.listInspections)
		protected.GET("/inspections/:id", handler.getInspection)
		protected.POST("/inspections", handler.createInspection)
		protected.PUT("/inspections/:id", handler.updateInspection)
		protected.DELETE("/inspections/:id", handler.deleteInspection)
		protected.DELETE("/inspections/:id/documents", handler.removeInspectionDocument)

		protected.GET("/insurances", handler.listInsurances)
		protected.GET("/insurances/:id", handler.getInsurance)
		protected.POST("/insurances", handler.createInsurance)
		protected.PUT("/insurances/:id", handler.updateInsurance)
		protected.DELETE("/insurances/:id", handler.deleteInsurance)
		protected.DELETE("/insurances/:id/documents", handler.removeInsuranceDocument)

		protected.GET("/dashboard/alerts", handler.dashboardAlerts)
		protected.GET("/dashboard/summary", handler.dashboardSummary)
		protected.GET("/dashboard/summary/export", handler.dashboardSummaryExport)
	}

	return router
}
