package router

import (
	"net/http"
	"net/url"

	docs "github.com/form3115-prep/backend/api"
	"github.com/form3115-prep/backend/internal/config"
	v1 "github.com/form3115-prep/backend/internal/controllers/v1"
	"github.com/form3115-prep/backend/internal/httputil"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time, see Makefile.
var version = "0.0.0"

// New sets up the router with all middlewares and routes.
func New(cfg *config.Config) (*gin.Engine, error) {
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		// The middleware logs method, path, status and latency itself, so
		// only the request ID needs to be attached here.
		logger.WithLogger(func(c *gin.Context, _ zerolog.Logger) zerolog.Logger {
			return log.Logger.With().
				Str("request-id", requestid.Get(c)).
				Logger()
		})))

	// CORS settings. Origins may contain glob patterns.
	if len(cfg.CORS.Origins) > 0 {
		log.Debug().Strs("allowOrigins", cfg.CORS.Origins).Msg("CORS")

		r.Use(cors.New(cors.Config{
			AllowOriginFunc:  AllowOriginFunc(cfg.CORS.Origins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "X-User-ID"},
			AllowCredentials: true,
		}))
	}

	if cfg.Server.EnableMetrics {
		if err := registerPrometheusMetrics(); err != nil {
			return nil, err
		}
		r.Use(MetricsMiddleware())
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	if cfg.Server.EnablePprof {
		pprof.Register(r)
	}

	apiURL, err := url.Parse(cfg.Server.APIURL)
	if err != nil {
		return nil, err
	}
	r.Use(URLMiddleware(apiURL))

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	/*
	 *  Route setup
	 */
	r.GET("", GetRoot)
	r.OPTIONS("", OptionsRoot)
	r.GET("/version", GetVersion)
	r.OPTIONS("/version", OptionsVersion)

	docs.SwaggerInfo.Title = "Form 3115 Preparation Backend"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Description = "The backend for preparing IRS Form 3115 applications for changes in accounting method."

	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 setup. Everything under /v1 needs an authenticated user.
	group := r.Group("/v1", RequireUser())
	{
		group.GET("", GetV1)
		group.OPTIONS("", OptionsV1)
	}

	v1.RegisterClientRoutes(group.Group("/clients"))
	v1.RegisterFilingRoutes(group.Group("/filings"))
	v1.RegisterDcnRoutes(group.Group("/dcns"))
	v1.RegisterStatsRoutes(group.Group("/stats"))

	log.Info().Msg("backend startup complete")

	return r, nil
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Docs    string `json:"docs" example:"https://example.com/api/docs/index.html"` // Swagger UI
	Version string `json:"version" example:"https://example.com/api/version"`     // Endpoint returning the API version
	V1      string `json:"v1" example:"https://example.com/api/v1"`               // List of V1 endpoints
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	RootResponse
// @Router			/ [get]
func GetRoot(c *gin.Context) {
	url := httputil.RequestHost(c)

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Docs:    url + "/docs/index.html",
			Version: url + "/version",
			V1:      httputil.RequestPathV1(c),
		},
	})
}

type VersionResponse struct {
	Data VersionObject `json:"data"`
}
type VersionObject struct {
	Version string `json:"version" example:"1.1.0"` // The softwae version of the backend
}

// @Summary		API version
// @Description	Returns the software version of the API
// @Tags			General
// @Success		200	{object}	VersionResponse
// @Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}

type V1Response struct {
	Links V1Links `json:"links"`
}

type V1Links struct {
	Clients string `json:"clients" example:"https://example.com/api/v1/clients"` // URL of client list endpoint
	Filings string `json:"filings" example:"https://example.com/api/v1/filings"` // URL of filing list endpoint
	Dcns    string `json:"dcns" example:"https://example.com/api/v1/dcns"`       // URL of change number list endpoint
	Stats   string `json:"stats" example:"https://example.com/api/v1/stats"`     // URL of the statistics endpoint
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			General
// @Success		200	{object}	V1Response
// @Router			/v1 [get]
func GetV1(c *gin.Context) {
	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Clients: httputil.RequestPathV1(c) + "/clients",
			Filings: httputil.RequestPathV1(c) + "/filings",
			Dcns:    httputil.RequestPathV1(c) + "/dcns",
			Stats:   httputil.RequestPathV1(c) + "/stats",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	httputil.OptionsGet(c)
}
