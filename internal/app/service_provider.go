package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	authAPI "lucky_wheel/internal/api/auth"
	employeeAPI "lucky_wheel/internal/api/employee"
	prizeAPI "lucky_wheel/internal/api/prize"
	reportAPI "lucky_wheel/internal/api/report"
	userAPI "lucky_wheel/internal/api/user"
	wheelAPI "lucky_wheel/internal/api/wheel"
	"lucky_wheel/internal/config"
	"lucky_wheel/internal/config/env"
	mw "lucky_wheel/internal/middleware"
	"lucky_wheel/internal/repository"
	"lucky_wheel/internal/repository/auth_repo"
	"lucky_wheel/internal/repository/backend"
	"lucky_wheel/internal/repository/employee_repo"
	"lucky_wheel/internal/repository/prize_repo"
	"lucky_wheel/internal/repository/spin_repo"
	"lucky_wheel/internal/repository/user_repo"
	"lucky_wheel/internal/service"
	"lucky_wheel/internal/service/auth"
	"lucky_wheel/internal/service/employee"
	"lucky_wheel/internal/service/play"
	"lucky_wheel/internal/service/prize"
	"lucky_wheel/internal/service/report"
	"lucky_wheel/internal/service/user"
	"lucky_wheel/internal/wheel"
	"lucky_wheel/pkg/resp"
)

type ServiceProvider struct {
	log *slog.Logger

	// Configs
	appCfg     config.AppConfig
	httpCfg    config.HTTPConfig
	backendCfg config.BackendConfig
	jwtCfg     config.JWTConfig
	wheelCfg   config.WheelConfig

	// Backend REST client
	backendClient *backend.Client

	// Repositories
	authRepo     repository.AuthRepository
	prizeRepo    repository.PrizeRepository
	userRepo     repository.UserRepository
	employeeRepo repository.EmployeeRepository
	spinRepo     repository.SpinRepository

	// Services
	authServ     service.AuthService
	prizeServ    service.PrizeService
	userServ     service.UserService
	employeeServ service.EmployeeService
	playServ     service.PlayService
	reportServ   service.ReportService

	// Handlers
	authHand     *authAPI.Handler
	prizeHand    *prizeAPI.Handler
	userHand     *userAPI.Handler
	employeeHand *employeeAPI.Handler
	wheelHand    *wheelAPI.Handler
	reportHand   *reportAPI.Handler

	router chi.Router
}

func newServiceProvider(log *slog.Logger) *ServiceProvider {
	return &ServiceProvider{log: log}
}

func (sp *ServiceProvider) AppCfg() config.AppConfig {
	if sp.appCfg == nil {
		sp.appCfg = env.NewAppConfig()
	}
	return sp.appCfg
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}
	return sp.httpCfg
}

func (sp *ServiceProvider) BackendCfg() config.BackendConfig {
	if sp.backendCfg == nil {
		cfg, err := env.NewBackendConfig()
		if err != nil {
			panic("failed to get backend config: " + err.Error())
		}
		sp.backendCfg = cfg
	}
	return sp.backendCfg
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) WheelCfg() config.WheelConfig {
	if sp.wheelCfg == nil {
		cfg, err := env.NewWheelConfigFromYAML(sp.AppCfg().WheelConfigPath())
		if err != nil {
			panic("failed to get wheel config: " + err.Error())
		}
		sp.wheelCfg = cfg
	}
	return sp.wheelCfg
}

func (sp *ServiceProvider) BackendClient() *backend.Client {
	if sp.backendClient == nil {
		sp.backendClient = backend.NewClient(sp.BackendCfg().BaseURL(), sp.BackendCfg().Timeout())
	}
	return sp.backendClient
}

func (sp *ServiceProvider) AuthRepo() repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.BackendClient())
	}
	return sp.authRepo
}

func (sp *ServiceProvider) PrizeRepo() repository.PrizeRepository {
	if sp.prizeRepo == nil {
		sp.prizeRepo = prize_repo.NewPrizeRepository(sp.BackendClient(), sp.WheelCfg().PrizeCacheTTL())
	}
	return sp.prizeRepo
}

func (sp *ServiceProvider) UserRepo() repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.BackendClient())
	}
	return sp.userRepo
}

func (sp *ServiceProvider) EmployeeRepo() repository.EmployeeRepository {
	if sp.employeeRepo == nil {
		sp.employeeRepo = employee_repo.NewEmployeeRepository(sp.BackendClient())
	}
	return sp.employeeRepo
}

func (sp *ServiceProvider) SpinRepo() repository.SpinRepository {
	if sp.spinRepo == nil {
		sp.spinRepo = spin_repo.NewSpinRepository(sp.BackendClient())
	}
	return sp.spinRepo
}

func (sp *ServiceProvider) AuthService() service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(sp.AuthRepo(), sp.JWTCfg())
	}
	return sp.authServ
}

func (sp *ServiceProvider) PrizeService() service.PrizeService {
	if sp.prizeServ == nil {
		sp.prizeServ = prize.NewPrizeService(sp.PrizeRepo())
	}
	return sp.prizeServ
}

func (sp *ServiceProvider) UserService() service.UserService {
	if sp.userServ == nil {
		sp.userServ = user.NewUserService(sp.UserRepo(), sp.SpinRepo(), sp.WheelCfg().DailySpins(), sp.log)
	}
	return sp.userServ
}

func (sp *ServiceProvider) EmployeeService() service.EmployeeService {
	if sp.employeeServ == nil {
		sp.employeeServ = employee.NewEmployeeService(sp.EmployeeRepo(), sp.log)
	}
	return sp.employeeServ
}

func (sp *ServiceProvider) PlayService() service.PlayService {
	if sp.playServ == nil {
		cfg := sp.WheelCfg()
		sp.playServ = play.NewPlayService(play.Deps{
			Prizes: sp.PrizeRepo(),
			Spins:  sp.SpinRepo(),
			Wheel: wheel.Config{
				SpinDuration:   cfg.SpinDuration(),
				FullRotations:  cfg.FullRotations(),
				SnapTolerance:  cfg.SnapTolerance(),
				ResultDelay:    cfg.ResultDelay(),
				ConfettiMarker: cfg.ConfettiMarker(),
			},
			Renderer: wheel.Renderer{
				Width:    cfg.CanvasWidth(),
				Height:   cfg.CanvasHeight(),
				FontSize: cfg.FontSize(),
				FontPath: cfg.FontPath(),
			},
			FPS: cfg.FPS(),
			TTL: cfg.SessionTTL(),
			Log: sp.log,
		})
	}
	return sp.playServ
}

func (sp *ServiceProvider) ReportService() service.ReportService {
	if sp.reportServ == nil {
		sp.reportServ = report.NewReportService(sp.SpinRepo(), sp.UserRepo(), sp.PrizeRepo(), sp.EmployeeRepo())
	}
	return sp.reportServ
}

func (sp *ServiceProvider) AuthHandler() *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv:         sp.AuthService(),
			TokenTTL:     sp.JWTCfg().AccessTokenDuration(),
			SecureCookie: sp.AppCfg().Env() != envLocal,
			Log:          sp.log,
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) PrizeHandler() *prizeAPI.Handler {
	if sp.prizeHand == nil {
		sp.prizeHand = prizeAPI.NewHandler(prizeAPI.HandlerDeps{Serv: sp.PrizeService(), Log: sp.log})
	}
	return sp.prizeHand
}

func (sp *ServiceProvider) UserHandler() *userAPI.Handler {
	if sp.userHand == nil {
		sp.userHand = userAPI.NewHandler(userAPI.HandlerDeps{Serv: sp.UserService(), Log: sp.log})
	}
	return sp.userHand
}

func (sp *ServiceProvider) EmployeeHandler() *employeeAPI.Handler {
	if sp.employeeHand == nil {
		sp.employeeHand = employeeAPI.NewHandler(employeeAPI.HandlerDeps{Serv: sp.EmployeeService(), Log: sp.log})
	}
	return sp.employeeHand
}

func (sp *ServiceProvider) WheelHandler() *wheelAPI.Handler {
	if sp.wheelHand == nil {
		sp.wheelHand = wheelAPI.NewHandler(wheelAPI.HandlerDeps{Serv: sp.PlayService(), Log: sp.log})
	}
	return sp.wheelHand
}

func (sp *ServiceProvider) ReportHandler() *reportAPI.Handler {
	if sp.reportHand == nil {
		sp.reportHand = reportAPI.NewHandler(reportAPI.HandlerDeps{Serv: sp.ReportService(), Log: sp.log})
	}
	return sp.reportHand
}

func (sp *ServiceProvider) Router() chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(middleware.RequestID)
		r.Use(middleware.RealIP)
		r.Use(mw.Logger(sp.log))
		r.Use(middleware.Recoverer)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Content-Disposition"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			resp.WriteJSONResponse(w, r, http.StatusOK, map[string]string{"status": "ok"})
		})

		authHandler := sp.AuthHandler()
		prizeHandler := sp.PrizeHandler()
		userHandler := sp.UserHandler()
		employeeHandler := sp.EmployeeHandler()
		wheelHandler := sp.WheelHandler()
		reportHandler := sp.ReportHandler()

		// Public endpoints
		r.Get("/prizes", prizeHandler.Public)
		r.Post("/users/check", userHandler.Check)
		r.Post("/users", userHandler.Enter)
		r.Get("/spins/user/{userID}", userHandler.Spins)
		r.Post("/employees/verify", employeeHandler.Verify)

		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/login", authHandler.Login)
			rr.Post("/register", authHandler.Register)
			rr.Post("/logout", authHandler.Logout)
			rr.With(mw.Auth(sp.JWTCfg().AccessTokenSecretKey())).Get("/me", authHandler.Me)
		})

		// Wheel endpoints
		r.Post("/wheel/session", wheelHandler.NewSession)
		r.Route("/wheel/{session}", func(rr chi.Router) {
			rr.Get("/state", wheelHandler.State)
			rr.Get("/image.png", wheelHandler.Image)
			rr.Get("/ws", wheelHandler.Stream)
			rr.Post("/spin/user", wheelHandler.SpinUser)
			rr.Post("/spin/employee", wheelHandler.SpinEmployee)
		})

		// Admin endpoints
		r.Route("/admin", func(rr chi.Router) {
			rr.Use(mw.Auth(sp.JWTCfg().AccessTokenSecretKey()))

			rr.Get("/dashboard", reportHandler.Dashboard)

			rr.Route("/prizes", func(pr chi.Router) {
				pr.Get("/", prizeHandler.List)
				pr.Post("/", prizeHandler.Create)
				pr.Get("/{id}", prizeHandler.Get)
				pr.Put("/{id}", prizeHandler.Update)
				pr.Delete("/{id}", prizeHandler.Delete)
			})

			rr.Route("/users", func(ur chi.Router) {
				ur.Get("/", userHandler.List)
				ur.Get("/export", reportHandler.ExportUsers)
				ur.Get("/{id}", userHandler.Get)
			})

			rr.Route("/employees", func(er chi.Router) {
				er.Get("/", employeeHandler.List)
				er.Post("/", employeeHandler.Create)
				er.Post("/import", employeeHandler.Import)
				er.Get("/template", employeeHandler.Template)
				er.Get("/export", reportHandler.ExportEmployees)
				er.Get("/{id}", employeeHandler.Get)
				er.Put("/{id}", employeeHandler.Update)
				er.Delete("/{id}", employeeHandler.Delete)
			})

			rr.Route("/spins", func(sr chi.Router) {
				sr.Get("/", reportHandler.Spins)
				sr.Get("/export", reportHandler.ExportSpins)
				sr.Get("/stats", reportHandler.Stats)
			})
		})

		sp.router = r
	}

	return sp.router
}
