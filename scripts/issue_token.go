// 手动签发测试用 JWT
//
// 账号由外部服务维护，本服务只校验 Token。此脚本用于本地联调或冒烟测试。
//
// 用法: go run scripts/issue_token.go -user 1 -role teacher

package main

import (
	"flag"
	"fmt"
	"lms_backend/internal/config"
	"lms_backend/internal/model"
	"lms_backend/internal/util"
	"log"
	"time"
)

func main() {
	userID := flag.Uint("user", 1, "用户ID")
	role := flag.String("role", string(model.Student), "角色: student / teacher / admin")
	ttl := flag.Duration("ttl", 0, "有效期，默认使用配置中的 jwt.expire_hours")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	switch model.UserRole(*role) {
	case model.Student, model.Teacher, model.Admin:
	default:
		log.Fatalf("未知角色: %s", *role)
	}

	expiration := cfg.JWT.ExpireTime
	if *ttl > 0 {
		expiration = *ttl
	}
	if expiration <= 0 {
		expiration = 24 * time.Hour
	}

	token, err := util.GenerateJWT(uint(*userID), model.UserRole(*role), cfg.JWT.Secret, expiration)
	if err != nil {
		log.Fatalf("签发失败: %v", err)
	}
	fmt.Println(token)
}
