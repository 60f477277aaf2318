package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/otel/trace"

	_ "lessonhub/docs"
	"lessonhub/pkg/config"
	"lessonhub/pkg/images"
	"lessonhub/pkg/lesson"
	lessonmem "lessonhub/pkg/lesson/memory"
	lessonpg "lessonhub/pkg/lesson/postgres"
	"lessonhub/pkg/lesson/rediscache"
	"lessonhub/pkg/logger"
	"lessonhub/pkg/order"
	ordermem "lessonhub/pkg/order/memory"
	orderpg "lessonhub/pkg/order/postgres"
	"lessonhub/pkg/otel"
)

var (
	cfg        config.Config
	lessonRepo lesson.Repository
	orderRepo  order.Repository
	resolver   images.Resolver
	validator  order.Validator
	log        *logger.Logger
	tracer     trace.Tracer
)

// @title LessonHub API
// @version 1.0
// @description API for browsing and ordering lessons
// @host localhost:3000
// @BasePath /
func main() {
	log = logger.New(os.Stdout, logger.LevelInfo, "lessonhub", otel.GetTraceID)
	defer log.Sync()

	var err error
	cfg, err = config.Load()
	if err != nil {
		log.Error(context.Background(), "load config", "error", err)
		os.Exit(1)
	}

	tp, shutdown, err := otel.InitTracing(log, otel.Config{ServiceName: "lessonhub", Host: cfg.OtelHost, Probability: cfg.TraceProbability})
	if err != nil {
		log.Error(context.Background(), "init tracing", "error", err)
		os.Exit(1)
	}
	defer shutdown(context.Background())
	tracer = tp.Tracer("lessonhub")

	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Error(context.Background(), "db connect", "error", err)
			os.Exit(1)
		}
		if err := createTables(db); err != nil {
			log.Error(context.Background(), "create tables", "error", err)
			os.Exit(1)
		}
		repo := lessonpg.New(db)
		if err := repo.Seed(context.Background(), lesson.Seed()); err != nil {
			log.Error(context.Background(), "seed lessons", "error", err)
			os.Exit(1)
		}
		lessonRepo = repo
		orderRepo = orderpg.New(db)
	} else {
		lessonRepo = lessonmem.New(lesson.Seed())
		orderRepo = ordermem.New()
	}

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		lessonRepo = rediscache.New(lessonRepo, rdb, cfg.CacheTTL)
	}

	resolver = images.Resolver{Dir: cfg.ImageDir}
	validator = order.Validator{MinPhoneDigits: cfg.MinPhoneDigits}

	r := newRouter()

	cors := gorillahandlers.CORS(
		gorillahandlers.AllowedOrigins(cfg.AllowedOrigins),
		gorillahandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut}),
		gorillahandlers.AllowedHeaders([]string{"Content-Type"}),
	)

	log.Info(context.Background(), "listening", "addr", ":"+cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, cors(r)); err != nil {
		log.Error(context.Background(), "server closed", "error", err)
	}
}

func newRouter() *mux.Router {
	r := mux.NewRouter()
	r.Use(traceMiddleware)
	r.HandleFunc("/lessons", listLessonsHandler).Methods(http.MethodGet)
	r.HandleFunc("/lessons/{id}", updateLessonHandler).Methods(http.MethodPut)
	r.HandleFunc("/search", searchLessonsHandler).Methods(http.MethodGet)
	r.HandleFunc("/orders", listOrdersHandler).Methods(http.MethodGet)
	r.HandleFunc("/orders", createOrderHandler).Methods(http.MethodPost)
	r.PathPrefix("/lesson-images/").Handler(images.Handler{Dir: cfg.ImageDir}).Methods(http.MethodGet)
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	return r
}

func createTables(db *sql.DB) error {
	if _, err := db.Exec("CREATE TABLE IF NOT EXISTS lessons (id TEXT PRIMARY KEY, subject TEXT, location TEXT, price DOUBLE PRECISION, spaces INT, image TEXT)"); err != nil {
		return err
	}
	_, err := db.Exec("CREATE TABLE IF NOT EXISTS orders (id TEXT PRIMARY KEY, name TEXT, phone TEXT, items JSONB, lesson_ids TEXT[], created_at TIMESTAMPTZ)")
	return err
}

// listLessonsHandler lists the full catalog.
// @Summary List lessons
// @Produce json
// @Success 200 {array} lesson.Lesson
// @Router /lessons [get]
func listLessonsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "listLessonsHandler")
	defer span.End()

	lessons, err := lessonRepo.List(ctx)
	if err != nil {
		log.Error(ctx, "list lessons", "error", err)
		respondError(w, http.StatusInternalServerError, "could not load lessons")
		return
	}
	respondJSON(w, http.StatusOK, resolveImages(lessons, baseURL(r)))
}

// searchLessonsHandler filters the catalog by a free-text query.
// @Summary Search lessons
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {array} lesson.Lesson
// @Router /search [get]
func searchLessonsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "searchLessonsHandler")
	defer span.End()

	lessons, err := lessonRepo.List(ctx)
	if err != nil {
		log.Error(ctx, "search lessons", "error", err)
		respondError(w, http.StatusInternalServerError, "could not load lessons")
		return
	}
	matched := lesson.Filter(lessons, r.URL.Query().Get("q"))
	respondJSON(w, http.StatusOK, resolveImages(matched, baseURL(r)))
}

// updateLessonHandler overwrites the provided fields of a lesson.
// @Summary Update lesson
// @Accept json
// @Produce json
// @Param id path string true "Lesson ID"
// @Param fields body lesson.Patch true "Fields to overwrite"
// @Success 200 {object} lesson.Lesson
// @Router /lessons/{id} [put]
func updateLessonHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "updateLessonHandler")
	defer span.End()

	var p lesson.Patch
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := lessonRepo.Patch(ctx, mux.Vars(r)["id"], p)
	if err != nil {
		if errors.Is(err, lesson.ErrNotFound) {
			respondError(w, http.StatusNotFound, "lesson not found")
			return
		}
		log.Error(ctx, "update lesson", "error", err)
		respondError(w, http.StatusInternalServerError, "could not update lesson")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// listOrdersHandler lists orders.
// @Summary List orders
// @Produce json
// @Success 200 {array} order.Order
// @Router /orders [get]
func listOrdersHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "listOrdersHandler")
	defer span.End()

	orders, err := orderRepo.List(ctx)
	if err != nil {
		log.Error(ctx, "list orders", "error", err)
		respondError(w, http.StatusInternalServerError, "could not load orders")
		return
	}
	if orders == nil {
		orders = []order.Order{}
	}
	respondJSON(w, http.StatusOK, orders)
}

// createOrderHandler validates and stores a new order.
// @Summary Create order
// @Accept json
// @Produce json
// @Param order body createOrderRequest true "Order"
// @Success 201 {object} order.Order
// @Failure 400 {object} errorResponse
// @Router /orders [post]
func createOrderHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "createOrderHandler")
	defer span.End()

	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lessons, err := lessonRepo.List(ctx)
	if err != nil {
		log.Error(ctx, "load catalog", "error", err)
		respondError(w, http.StatusInternalServerError, "could not load lessons")
		return
	}

	o, err := validator.Validate(req.Name, req.Phone, req.Items, lessons)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	o.ID = uuid.NewString()
	o.CreatedAt = time.Now().UTC()

	if err := orderRepo.Create(ctx, o); err != nil {
		log.Error(ctx, "create order", "error", err)
		respondError(w, http.StatusInternalServerError, "could not save order")
		return
	}
	respondJSON(w, http.StatusCreated, o)
}

func traceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := otel.InjectTracing(r.Context(), tracer)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// resolveImages rewrites each lesson's image reference into a URL the
// client can fetch.
func resolveImages(lessons []lesson.Lesson, base string) []lesson.Lesson {
	out := make([]lesson.Lesson, len(lessons))
	for i, l := range lessons {
		l.Image = resolver.Resolve(l.Image, base)
		out[i] = l
	}
	return out
}

// baseURL derives the absolute base for image links from the request
// unless a fixed base is configured.
func baseURL(r *http.Request) string {
	if cfg.BaseURL != "" {
		return cfg.BaseURL
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorResponse{Error: msg})
}

// createOrderRequest is the POST /orders body.
type createOrderRequest struct {
	Name  string       `json:"name"`
	Phone string       `json:"phone"`
	Items []order.Item `json:"items"`
}

// errorResponse is the JSON shape of every error reply.
type errorResponse struct {
	Error string `json:"error"`
}
