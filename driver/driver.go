package driver

import (
	"database/sql"
	"log"
	"os"

	_ "github.com/go-sql-driver/mysql"
)

func ConnectDB() *sql.DB {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		dsn = "root:root@tcp(127.0.0.1:3306)/jornada?charset=utf8mb4"
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Fatal("Erro ao abrir conexão com o banco de dados:", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatal("Não foi possível conectar ao banco de dados:", err)
	}
	return db
}

func InitSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS inscricoes (
			id INT AUTO_INCREMENT PRIMARY KEY,
			nome VARCHAR(255) NOT NULL,
			cpf VARCHAR(11) NOT NULL UNIQUE,
			email VARCHAR(255) NOT NULL,
			telefone VARCHAR(30) NOT NULL,
			instituicao VARCHAR(255) NOT NULL,
			cargo VARCHAR(255) NOT NULL,
			dia_participacao VARCHAR(10) NOT NULL DEFAULT 'ambos',
			presente_dia1 TINYINT(1) NOT NULL DEFAULT 0,
			presente_dia2 TINYINT(1) NOT NULL DEFAULT 0,
			presente TINYINT(1) NOT NULL DEFAULT 0,
			data_inscricao VARCHAR(30) NOT NULL,
			created_at VARCHAR(30) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS admins (
			id INT AUTO_INCREMENT PRIMARY KEY,
			email VARCHAR(255) NOT NULL UNIQUE,
			senha_hash VARCHAR(100) NOT NULL,
			nome VARCHAR(255) NOT NULL,
			created_at VARCHAR(30) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS certificados (
			id INT AUTO_INCREMENT PRIMARY KEY,
			inscricao_id INT NOT NULL UNIQUE,
			arquivo_path VARCHAR(500),
			gerado TINYINT(1) NOT NULL DEFAULT 0,
			enviado TINYINT(1) NOT NULL DEFAULT 0,
			data_gerado VARCHAR(30),
			data_enviado VARCHAR(30)
		)`,
		"CREATE TABLE IF NOT EXISTS settings (`key` VARCHAR(64) PRIMARY KEY, `value` TEXT NOT NULL)",
		`CREATE TABLE IF NOT EXISTS avaliacoes (
			id INT AUTO_INCREMENT PRIMARY KEY,
			inscricao_id INT NOT NULL UNIQUE,
			nota_geral INT NOT NULL,
			nota_conteudo INT NOT NULL,
			nota_organizacao INT NOT NULL,
			nota_palestrantes INT NOT NULL,
			comentario TEXT,
			sugestoes TEXT,
			created_at VARCHAR(30) NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
