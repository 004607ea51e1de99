package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"

	"github.com/answersheet/gradebot/internal/api/middleware"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.POST("/grade").
			To(handler.Grade).
			Doc("Grade an answer against the reference guide").
			Metadata(restfulspec.KeyOpenAPITags, []string{"grade"}).
			Reads(GradeRequest{}).
			Writes(GradeResponse{}).
			Returns(200, "OK", GradeResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/extract").
			To(handler.Extract).
			Doc("Extract text from an image on the server host").
			Metadata(restfulspec.KeyOpenAPITags, []string{"extract"}).
			Reads(ExtractRequest{}).
			Writes(ExtractResponse{}).
			Returns(200, "OK", ExtractResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(502, "Extraction Failed", middleware.ErrorResponse{}))

	container.Add(ws)
}
