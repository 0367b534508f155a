// Package mysql establishes the MySQL connection, migrates the schema
// and hands out the repository layer.
package mysql

import (
	"fmt"

	"github.com/ebrahimelkordy/siraj-0.0.1/internal/config"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/dao/mysql/repository"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/model"

	"go.uber.org/zap"
	mysqldriver "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Init connects to MySQL, runs AutoMigrate and returns the repository
// aggregate. Connection or migration failure is fatal.
func Init() *repository.Repositories {
	conf := config.GetConfig()

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		conf.MysqlConfig.User,
		conf.MysqlConfig.Password,
		conf.MysqlConfig.Host,
		conf.MysqlConfig.Port,
		conf.MysqlConfig.DatabaseName,
	)

	db, err := gorm.Open(mysqldriver.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		zap.L().Fatal(err.Error())
	}

	if err = Migrate(db); err != nil {
		zap.L().Fatal(err.Error())
	}

	return repository.NewRepositories(db)
}

// Migrate creates or updates all tables. Exposed so tests can run the
// same schema against their own database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.UserInfo{},
		&model.GroupInfo{},
		&model.GroupMember{},
		&model.GroupPermission{},
		&model.GroupBan{},
		&model.Invitation{},
		&model.FriendRequest{},
		&model.Friendship{},
		&model.Notification{},
	)
}
