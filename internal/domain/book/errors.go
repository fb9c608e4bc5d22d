package book

import (
	apperrors "github.com/xiebiao/quotelib/pkg/errors"
)

// 书目领域错误定义
var (
	// ErrBookNotFound 书目不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "书目不存在")

	// ErrTitleRequired 书名必填
	ErrTitleRequired = apperrors.New(apperrors.ErrCodeInvalidParams, "书名不能为空")

	// ErrPublisherRequired 出版社必填
	ErrPublisherRequired = apperrors.New(apperrors.ErrCodeInvalidParams, "书目必须关联出版社")

	// ErrInvalidRating 评分超出范围
	ErrInvalidRating = apperrors.New(apperrors.ErrCodeInvalidParams, "评分必须在0-10之间")

	// ErrTitleDuplicate 书名已存在
	ErrTitleDuplicate = apperrors.New(apperrors.ErrCodeTitleDuplicate, "书名已存在")

	// ErrISBNDuplicate ISBN已存在
	ErrISBNDuplicate = apperrors.New(apperrors.ErrCodeISBNDuplicate, "ISBN已存在")

	// ErrCitationDuplicate 引用格式已存在
	ErrCitationDuplicate = apperrors.New(apperrors.ErrCodeCitationDuplicate, "引用格式已存在")
)
