package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/edufund/scholarhub/internal/app/controllers"
	"github.com/edufund/scholarhub/internal/app/models"
	"github.com/edufund/scholarhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	applicationController *controllers.ApplicationController,
	spotlightController *controllers.SpotlightController,
	donationController *controllers.DonationController,
	helpInterestController *controllers.HelpInterestController,
	featuredController *controllers.FeaturedController,
	activityLogController *controllers.ActivityLogController,
	fileController *controllers.FileController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
		auth.POST("/logout", authController.Logout)
	}

	// --- Public visitor routes ---
	// The featured list, donation pledges and help offers require no account.
	v1.GET("/featured-students", featuredController.List)
	v1.POST("/donations", donationController.Create)
	v1.POST("/help-interests", helpInterestController.Create)

	// Signed file downloads. Access control lives in the URL signature,
	// not in a session, so photo links keep working in public listings.
	v1.GET("/files/*path", fileController.Download)

	// --- Authenticated student routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		students := authenticated.Group("/students")
		{
			students.GET("/me", studentController.GetMe)
			students.PUT("/me", studentController.UpdateMe)
		}

		applications := authenticated.Group("/applications")
		{
			applications.POST("", applicationController.Create)
			applications.GET("", applicationController.ListMine)
			applications.GET("/:id", applicationController.GetByID)
			applications.PATCH("/:id", applicationController.Update)
			applications.POST("/:id/documents", applicationController.UploadDocument)
		}

		spotlights := authenticated.Group("/spotlight-applications")
		{
			spotlights.POST("", spotlightController.Create)
			spotlights.GET("", spotlightController.ListMine)
			spotlights.GET("/:id", spotlightController.GetByID)
			spotlights.PATCH("/:id", spotlightController.Update)
			spotlights.POST("/:id/documents", spotlightController.UploadDocument)
		}

		// --- Admin routes ---
		admin := authenticated.Group("/admin")
		admin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			adminApplications := admin.Group("/applications")
			{
				adminApplications.GET("", applicationController.AdminList)
				adminApplications.GET("/:id", applicationController.AdminGet)
				adminApplications.PATCH("/:id", applicationController.AdminReview)
			}

			adminSpotlights := admin.Group("/spotlight-applications")
			{
				adminSpotlights.GET("", spotlightController.AdminList)
				adminSpotlights.GET("/:id", spotlightController.AdminGet)
				adminSpotlights.PATCH("/:id", spotlightController.AdminReview)
			}

			adminDonations := admin.Group("/donations")
			{
				adminDonations.GET("", donationController.AdminList)
				adminDonations.GET("/:id", donationController.AdminGet)
				adminDonations.PATCH("/:id", donationController.AdminReview)
			}

			adminHelpInterests := admin.Group("/help-interests")
			{
				adminHelpInterests.GET("", helpInterestController.AdminList)
				adminHelpInterests.GET("/:id", helpInterestController.AdminGet)
				adminHelpInterests.PATCH("/:id", helpInterestController.AdminReview)
			}

			adminFeatured := admin.Group("/featured-students")
			{
				adminFeatured.PATCH("/toggle", featuredController.Toggle)
				adminFeatured.PATCH("/reorder", featuredController.Reorder)
			}

			admin.GET("/activity-logs", activityLogController.List)
		}
	}
}
