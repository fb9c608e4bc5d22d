package mysql

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// getDB 从context获取事务DB,如果没有则使用默认DB
// 教学要点:事务传递机制——TxManager把事务DB放进context,
// 各Repository的所有读写都经过这里,自动参与同一事务
func getDB(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok {
		return tx
	}
	return fallback.WithContext(ctx)
}

// isDuplicateError 判断是否为MySQL唯一索引冲突错误
// MySQL错误码：
// - 1062: Duplicate entry 'xxx' for key 'yyy'
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	// GORM v2的错误判断
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// 兼容检查：错误信息包含"Duplicate entry"
	return strings.Contains(err.Error(), "Duplicate entry")
}

// duplicateKeyName 从Duplicate entry错误信息中提取冲突的索引名
// 一张表上有多个唯一索引时(如books的title/isbn/citation),
// 据此区分该返回哪个业务错误;提取失败返回空串
func duplicateKeyName(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	idx := strings.LastIndex(msg, "for key '")
	if idx < 0 {
		return ""
	}
	rest := msg[idx+len("for key '"):]
	end := strings.Index(rest, "'")
	if end < 0 {
		return ""
	}
	return rest[:end]
}
