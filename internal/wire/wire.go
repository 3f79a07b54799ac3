package wire

import (
	"Inkstone/internal/api"
	"Inkstone/internal/api/handler"
	"Inkstone/internal/repository"
	"Inkstone/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router *gin.Engine
	DB     *gorm.DB
}

func BuildApplication(db *gorm.DB) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	roleRepo := repository.NewRoleRepo(db)
	postRepo := repository.NewPostRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	actionRepo := repository.NewPostActionRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	tagRepo := repository.NewTagRepo(db)
	chatRepo := repository.NewChatRepo(db)
	statsRepo := repository.NewStatsRepo(db)

	userService := service.NewUserService(userRepo, roleRepo, statsRepo)
	postService := service.NewPostService(postRepo, tagRepo, categoryRepo, actionRepo, commentRepo, statsRepo)
	commentService := service.NewCommentService(commentRepo, postRepo, userRepo, statsRepo)
	actionService := service.NewPostActionService(actionRepo, postRepo)
	categoryService := service.NewCategoryService(categoryRepo, statsRepo)
	tagService := service.NewTagService(tagRepo)
	chatService := service.NewChatService(chatRepo)
	adminService := service.NewAdminService(userRepo, roleRepo, statsRepo)

	handlers := &api.HandlersGroup{
		UserHandler:       handler.NewUserHandler(userService),
		PostHandler:       handler.NewPostHandler(postService),
		CommentHandler:    handler.NewCommentHandler(commentService),
		PostActionHandler: handler.NewPostActionHandler(actionService),
		CategoryHandler:   handler.NewCategoryHandler(categoryService),
		TagHandler:        handler.NewTagHandler(tagService),
		ChatHandler:       handler.NewChatHandler(chatService),
		AdminHandler:      handler.NewAdminHandler(adminService),
		MediaHandler:      handler.NewMediaHandler(),
		WsHandler:         handler.NewWsHandler(),
	}

	router := api.SetupRouter(handlers)

	return &ApplicationContainer{
		Router: router,
		DB:     db,
	}, nil
}
