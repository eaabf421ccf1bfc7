package auth

// RoleAllowed 纯函数的角色集合判断，中间件和测试共用
func RoleAllowed(role string, required []string) bool {
	for _, r := range required {
		if role == r {
			return true
		}
	}
	return false
}
