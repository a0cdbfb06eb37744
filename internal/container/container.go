package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/finboard/dashboard/config"
	"github.com/finboard/dashboard/internal/infrastructure/viewcache"
	"github.com/finboard/dashboard/pkg/helpers"
	"github.com/finboard/dashboard/pkg/uploader"
)

// app-level container to share constructed components across packages.
// The router auto-wires modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	gormDB      *gorm.DB
	redisClient *redis.Client
	jwtManager  *helpers.JWTManager
	imageStore  uploader.Uploader
	invalidator viewcache.Invalidator
)

func SetConfig(c *config.Config)   { cfg = c }
func GetConfig() *config.Config    { return cfg }
func SetLogger(l *logrus.Logger)   { logger = l }
func GetLogger() *logrus.Logger    { return logger }
func SetPGPool(p *pgxpool.Pool)    { pgPool = p }
func GetPGPool() *pgxpool.Pool     { return pgPool }
func SetGorm(db *gorm.DB)          { gormDB = db }
func GetGorm() *gorm.DB            { return gormDB }
func SetRedis(r *redis.Client)     { redisClient = r }
func GetRedis() *redis.Client      { return redisClient }
func SetJWT(m *helpers.JWTManager) { jwtManager = m }
func GetJWT() *helpers.JWTManager  { return jwtManager }

func SetUploader(u uploader.Uploader)           { imageStore = u }
func GetUploader() uploader.Uploader            { return imageStore }
func SetInvalidator(i viewcache.Invalidator)    { invalidator = i }
func GetInvalidator() viewcache.Invalidator {
	if invalidator != nil {
		return invalidator
	}
	return viewcache.Noop{}
}
