package main

import (
	"net/http"

	"github.com/evomind/evomind-api/internal/api"
	apiMiddleware "github.com/evomind/evomind-api/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// APIPrefix is the mount point of every route.
const APIPrefix = "/api/v1"

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	systemHandler := api.NewSystemHandler(app.store, app.logger)
	authHandler := api.NewAuthHandler(app.authService, app.logger)
	sourceHandler := api.NewSourceHandler(app.store, app.recognizer, app.logger)
	cardHandler := api.NewCardHandler(app.synthesiser, app.logger)
	discussionHandler := api.NewDiscussionHandler(app.synthesiser, app.logger)
	challengeHandler := api.NewChallengeHandler(app.store, app.logger)
	subscriptionHandler := api.NewSubscriptionHandler(app.logger)
	orderHandler := api.NewOrderHandler(app.store, app.sequence, app.logger)
	paymentHandler := api.NewPaymentHandler(app.verifier, app.logger)

	r.Route(APIPrefix, func(r chi.Router) {
		r.Get("/health", systemHandler.Health)
		r.Get("/system/readiness", systemHandler.Readiness)
		r.Get("/onboarding/state", systemHandler.OnboardingState)
		r.Post("/onboarding/complete", systemHandler.CompleteOnboarding)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/sms/send", authHandler.SendSMS)
			r.Post("/sms/login", authHandler.SMSLogin)
			r.Post("/password/login", authHandler.PasswordLogin)
			r.Post("/wechat/login", authHandler.WechatLogin)
			r.Post("/password/reset", authHandler.ResetPassword)
			r.Post("/logout", authHandler.Logout)
		})

		r.Route("/sources", func(r chi.Router) {
			r.Get("/", sourceHandler.List)
			r.Post("/ocr/recognize", sourceHandler.Recognize)
			r.Post("/import", sourceHandler.Import)
			r.Post("/manual", sourceHandler.AddManual)
			r.Delete("/{id}", sourceHandler.Delete)
		})

		r.Route("/cards", func(r chi.Router) {
			r.Get("/feed", cardHandler.Feed)
			r.Get("/{id}/mindmap", cardHandler.Mindmap)
			r.Get("/{id}/drilldown", cardHandler.Drilldown)
		})

		r.Route("/discussion", func(r chi.Router) {
			r.Post("/daily-question/generate", discussionHandler.GenerateDailyQuestion)
			r.Post("/{id}/reply", discussionHandler.Reply)
			r.Post("/{id}/finalize", discussionHandler.Finalize)
		})

		r.Route("/challenges", func(r chi.Router) {
			r.Get("/current", challengeHandler.Current)
			r.Post("/{id}/status", challengeHandler.UpdateStatus)
			r.Post("/{id}/artifact", challengeHandler.SubmitArtifact)
		})

		r.Get("/subscription/plans", subscriptionHandler.Plans)
		r.Post("/subscription/cost-estimate", subscriptionHandler.CostEstimate)

		r.Post("/orders/create", orderHandler.Create)
		r.Get("/orders/history", orderHandler.History)
		r.Post("/refund/apply", orderHandler.ApplyRefund)
		r.Post("/privacy/export", orderHandler.ExportData)
		r.Post("/privacy/delete-account", orderHandler.DeleteAccount)

		r.Post("/pay/wechat/callback", paymentHandler.WechatCallback)
		r.Post("/pay/alipay/callback", paymentHandler.AlipayCallback)
	})

	return r
}
