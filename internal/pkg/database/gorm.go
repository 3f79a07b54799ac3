package database

import (
	"Inkstone/internal/api/config"
	"Inkstone/internal/model"
	"Inkstone/internal/pkg/consts"
	"Inkstone/internal/pkg/logger"
	log "log/slog"
	"time"

	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewGormDB 初始化并返回 *gorm.DB 实例，处理连接池配置
func NewGormDB(cfg *config.DBConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector

	dialector = mysql.Open(cfg.DSN)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:      logger.NewGormLogger(),
		PrepareStmt: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database connection")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get underlying DB")
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdle)
	sqlDB.SetMaxOpenConns(cfg.MaxOpen)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Minute)

	if err = sqlDB.Ping(); err != nil {
		return nil, errors.Wrap(err, "database connection check failed")
	}

	log.Info("Database connection established successfully.")
	return db, nil
}

// RegisterSchema 进程启动时一次性注册全部实体关系并种子化角色表。
// 请求开始处理之后不再变更任何关联关系。
func RegisterSchema(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.Category{},
		&model.Tag{},
		&model.Post{},
		&model.PostTag{},
		&model.Comment{},
		&model.Like{},
		&model.SavedPost{},
		&model.ChatMessage{},
		&model.ActivityLog{},
	)
	if err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return seedRoles(db)
}

func seedRoles(db *gorm.DB) error {
	for _, name := range []string{consts.RoleAdmin, consts.RoleSubAdmin, consts.RoleUser} {
		role := model.Role{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&role).Error; err != nil {
			return errors.Wrapf(err, "failed to seed role %s", name)
		}
	}
	return nil
}
