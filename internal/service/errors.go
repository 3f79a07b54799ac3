package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

var (
	ErrParamInvalid      = errors.New("参数错误")
	ErrPasswordIncorrect = errors.New("邮箱或密码错误")
	ErrForbidden         = errors.New("权限不足")

	// 资源不存在。非所有者的修改/删除同样返回这些错误，避免泄露资源是否存在
	ErrUserNotFound     = errors.New("用户不存在")
	ErrPostNotFound     = errors.New("帖子不存在")
	ErrCommentNotFound  = errors.New("评论不存在")
	ErrCategoryNotFound = errors.New("分类不存在")
	ErrTagNotFound      = errors.New("标签不存在")
	ErrChatNotFound     = errors.New("消息不存在")
	ErrRoleInvalid      = errors.New("角色不存在")

	// 唯一约束 / 外键 restrict 冲突
	ErrEmailExist    = errors.New("邮箱已注册")
	ErrUsernameExist = errors.New("用户名已存在")
	ErrCategoryExist = errors.New("分类已存在")
	ErrTagExist      = errors.New("标签已存在")
	ErrCategoryInUse = errors.New("分类下仍有帖子，无法删除")

	ErrFileNotSupported = errors.New("不支持的文件类型")
	UnExpectedError     = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:      BadRequest,
	ErrPasswordIncorrect: Unauthorized,
	ErrForbidden:         Forbidden,
	ErrUserNotFound:      NotFound,
	ErrPostNotFound:      NotFound,
	ErrCommentNotFound:   NotFound,
	ErrCategoryNotFound:  NotFound,
	ErrTagNotFound:       NotFound,
	ErrChatNotFound:      NotFound,
	ErrRoleInvalid:       BadRequest,
	ErrEmailExist:        Conflict,
	ErrUsernameExist:     Conflict,
	ErrCategoryExist:     Conflict,
	ErrTagExist:          Conflict,
	ErrCategoryInUse:     Conflict,
	ErrFileNotSupported:  BadRequest,
	UnExpectedError:      InternalServerError,
}
