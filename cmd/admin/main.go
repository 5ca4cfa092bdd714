package main

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"

	"jobsearch/internal/auth"
	"jobsearch/internal/config"
	"jobsearch/internal/database"
	"jobsearch/internal/store"
)

func main() {
	var (
		mongoURI    = flag.String("mongo-uri", "", "MongoDB 连接串（可选，默认读 MONGO_URI）")
		mongoDB     = flag.String("mongo-db", "", "数据库名（可选，默认读 MONGO_DATABASE）")
		eID         = flag.String("e-id", "", "要创建的雇主 e_id；为空时只建索引")
		name        = flag.String("name", "", "雇主姓名")
		email       = flag.String("email", "", "雇主邮箱")
		designation = flag.String("designation", "", "职位")
		orgName     = flag.String("orgname", "", "所属机构")
	)
	flag.Parse()

	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if v := strings.TrimSpace(*mongoURI); v != "" {
		cfg.Mongo.URI = v
	}
	if v := strings.TrimSpace(*mongoDB); v != "" {
		cfg.Mongo.Database = v
	}

	ctx := context.Background()
	client, db, err := database.InitDatabase(ctx, cfg.Mongo)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("ensure indexes: %v", err)
	}
	fmt.Printf("indexes ready on %s\n", cfg.Mongo.Database)

	id := strings.TrimSpace(*eID)
	if id == "" {
		return
	}

	repo := store.New(db)
	switch _, err := repo.GetEmployerByEID(ctx, id); {
	case err == nil:
		log.Fatalf("employer %q already exists", id)
	case errors.Is(err, store.ErrNotFound):
	default:
		log.Fatalf("query employer: %v", err)
	}

	password, err := generateRandomPassword(24)
	if err != nil {
		log.Fatalf("generate password: %v", err)
	}
	hashed, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	employer := database.Employer{
		EID:          id,
		Name:         strings.TrimSpace(*name),
		Email:        strings.TrimSpace(*email),
		Designation:  strings.TrimSpace(*designation),
		OrgName:      strings.TrimSpace(*orgName),
		PasswordHash: hashed,
	}
	if err := repo.CreateEmployer(ctx, &employer); err != nil {
		log.Fatalf("create employer: %v", err)
	}

	fmt.Printf("已创建雇主账号：\n")
	fmt.Printf("e_id: %s\n", id)
	fmt.Printf("初始密码: %s\n", password)
	fmt.Printf("提示：该密码仅显示一次，请妥善保存。\n")
}

func generateRandomPassword(bytesLen int) (string, error) {
	if bytesLen <= 0 {
		bytesLen = 24
	}
	buf := make([]byte, bytesLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
