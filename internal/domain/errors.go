package domain

import "errors"

// 仓储层哨兵错误，service 负责映射到 HTTP 语义
var ErrSlotTaken = errors.New("appointment slot already taken")
