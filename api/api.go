package api

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"fairslot/internal/db/models/postgres/public/model"
	"fairslot/internal/domain"
	"fairslot/internal/repository"
	l3_service "fairslot/internal/service/l3"
	"fairslot/internal/util"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApiHandler struct {
	Db                       *sql.DB
	JwtSecret                string
	BidService               l3_service.BidService
	AuctionService           l3_service.AuctionService
	SlotAllocatorService     l3_service.SlotAllocatorService
	AssetRepository          repository.AssetRepository
	SlotAllocationRepository repository.SlotAllocationRepository
	FairnessScoreRepository  repository.FairnessScoreRepository
	ApiRequestRepository     repository.ApiRequestRepository
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to fairslot"})
	})

	authed := router.Group("/", m.authMiddleware)
	authed.POST("/bids", m.submitBid)
	authed.POST("/bids/validate", m.validateBid)
	authed.POST("/bids/:id/withdraw", m.withdrawBid)
	authed.GET("/bids/:id/suggestions", m.bidSuggestions)
	authed.GET("/bids/:id/score", m.bidScore)
	authed.POST("/auctions", m.startAuction)
	authed.POST("/auctions/:id/end", m.endAuction)
	authed.GET("/assets/:id/allocations", m.assetAllocations)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, errorStatusCode(err))
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func errorStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return 404
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrAuctionClosed):
		return 409
	case errors.Is(err, domain.ErrLockContention):
		return 503
	default:
		return 500
	}
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: ctx.Writer}
	ctx.Writer = w

	body, err := ctx.GetRawData()
	if err != nil {
		log.Println(fmt.Errorf("failed to get raw data: %w", err))
	}
	ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

	type userIdBody struct {
		UserID uuid.UUID `json:"userID"`
	}

	reqBody := userIdBody{}
	if len(body) > 0 {
		err = json.Unmarshal(body, &reqBody)
		if err != nil {
			log.Println(fmt.Errorf("failed to get req body: %w", err))
		}
	}
	var userID *uuid.UUID
	if reqBody.UserID != uuid.Nil {
		userID = &reqBody.UserID
	}

	start := time.Now().UTC()
	req, err := m.ApiRequestRepository.Add(m.Db, model.APIRequest{
		UserID:      userID,
		IPAddress:   util.StrPointer(ctx.ClientIP()),
		Method:      ctx.Request.Method,
		Route:       ctx.Request.URL.Path,
		RequestBody: util.StrPointer(string(body)),
		StartTs:     start,
	})
	if err != nil {
		log.Println(err)
	}

	ctx.Next()

	if req != nil {
		req.DurationMs = util.Int64Pointer(time.Since(start).Milliseconds())
		req.StatusCode = util.Int32Pointer(int32(ctx.Writer.Status()))
		req.ResponseBody = util.StrPointer(w.body.String())

		err = m.ApiRequestRepository.Update(m.Db, *req)
		if err != nil {
			log.Println(err)
		}
	}
}
