package quote

import (
	apperrors "github.com/xiebiao/quotelib/pkg/errors"
)

// 引文领域错误定义
var (
	// ErrQuoteNotFound 引文不存在
	ErrQuoteNotFound = apperrors.New(apperrors.ErrCodeQuoteNotFound, "引文不存在")

	// ErrTextRequired 正文必填
	ErrTextRequired = apperrors.New(apperrors.ErrCodeInvalidParams, "引文正文不能为空")

	// ErrTextTooLong 正文超长
	ErrTextTooLong = apperrors.New(apperrors.ErrCodeInvalidParams, "引文正文不能超过3000个字符")

	// ErrBookRequired 书目必填
	ErrBookRequired = apperrors.New(apperrors.ErrCodeInvalidParams, "引文必须关联书目")

	// ErrInvalidQuoteID 无效的引文ID
	ErrInvalidQuoteID = apperrors.New(apperrors.ErrCodeInvalidParams, "无效的引文ID")

	// ErrNothingToUpdate 更新请求没有任何字段
	ErrNothingToUpdate = apperrors.New(apperrors.ErrCodeInvalidParams, "更新请求不包含任何变更")
)
