package user

import (
	"time"
)

// User 用户实体（聚合根）
// DDD设计说明：
// 1. 用户是会话认证的主体，引文行通过UserID记录录入者
// 2. 密码已加密存储（bcrypt），不应该有GetPassword()等方法暴露明文
// 3. 领域实体不依赖GORM tag（infrastructure层的Repository实现时会处理映射）
type User struct {
	ID        uint
	Email     string
	Password  string // bcrypt哈希值
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser 创建新用户（工厂方法）
// hashedPassword必须是bcrypt加密后的密码
func NewUser(email, hashedPassword, name string) *User {
	now := time.Now()
	return &User{
		Email:     email,
		Password:  hashedPassword,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UpdateName 更新显示名（领域行为）
func (u *User) UpdateName(name string) {
	u.Name = name
	u.UpdatedAt = time.Now()
}
