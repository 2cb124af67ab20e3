package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"jornada-backend/controllers"
	"jornada-backend/driver"
	"jornada-backend/services"
	"jornada-backend/utils"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

func main() {
	seedFlag := flag.Bool("seed", false, "cria o admin padrão e as configurações iniciais e encerra")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Arquivo .env não encontrado, usando variáveis de ambiente")
	}
	secret := os.Getenv("SECRET")
	if secret == "" {
		log.Fatal("SECRET variable is not set")
	}

	db := driver.ConnectDB()
	defer db.Close()

	if err := driver.InitSchema(db); err != nil {
		log.Fatal("Erro ao criar schema:", err)
	}

	if *seedFlag {
		if err := driver.Seed(db); err != nil {
			log.Fatal("Erro no seed:", err)
		}
		return
	}

	settings := &services.DBSettings{DB: db}
	mailer := &services.Mailer{Settings: settings}
	registrationService := &services.RegistrationService{DB: db, Settings: settings, Notifier: mailer}
	certificateService := &services.CertificateService{DB: db, Settings: settings, OutputDir: "certificates"}
	evaluationService := &services.EvaluationService{DB: db}

	authController := controllers.AuthController{}
	adminController := controllers.AdminController{}
	inscricaoController := controllers.InscricaoController{Service: registrationService, Settings: settings}
	certificadoController := controllers.CertificadoController{Service: certificateService, Mailer: mailer}
	avaliacaoController := controllers.AvaliacaoController{Service: evaluationService}
	settingsController := controllers.SettingsController{}

	router := mux.NewRouter()

	router.HandleFunc("/api/auth/login", authController.Login(db)).Methods("POST")

	router.HandleFunc("/api/admins", adminController.List(db)).Methods("GET")
	router.HandleFunc("/api/admins", adminController.Create(db)).Methods("POST")
	router.HandleFunc("/api/admins/{id}", adminController.Update(db)).Methods("PUT")
	router.HandleFunc("/api/admins/{id}", adminController.Delete(db)).Methods("DELETE")

	router.HandleFunc("/api/inscricoes", inscricaoController.Create()).Methods("POST")
	router.HandleFunc("/api/inscricoes", inscricaoController.List(db)).Methods("GET")
	router.HandleFunc("/api/inscricoes/stats", inscricaoController.Stats(db)).Methods("GET")
	router.HandleFunc("/api/inscricoes/export", inscricaoController.ExportCSV(db)).Methods("GET")
	router.HandleFunc("/api/inscricoes/vagas", inscricaoController.Vacancy(db)).Methods("GET")
	router.HandleFunc("/api/inscricoes/{id}/presenca", inscricaoController.TogglePresenca()).Methods("PATCH")
	router.HandleFunc("/api/inscricoes/{id}", inscricaoController.Delete()).Methods("DELETE")
	router.HandleFunc("/api/checkin", inscricaoController.CheckIn()).Methods("POST")

	router.HandleFunc("/api/certificados/gerar", certificadoController.Gerar()).Methods("POST")
	router.HandleFunc("/api/certificados/enviar", certificadoController.Enviar()).Methods("POST")
	router.HandleFunc("/api/certificados/stats", certificadoController.Stats()).Methods("GET")

	router.HandleFunc("/api/settings", settingsController.Get(db)).Methods("GET")
	router.HandleFunc("/api/settings", settingsController.Update(db)).Methods("PUT")

	router.HandleFunc("/api/avaliacoes", avaliacaoController.Create()).Methods("POST")
	router.HandleFunc("/api/avaliacoes/stats", avaliacaoController.Stats(db)).Methods("GET")
	router.HandleFunc("/api/avaliacoes/export", avaliacaoController.ExportCSV(db)).Methods("GET")

	router.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseJSON(w, map[string]string{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}).Methods("GET")

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}

	log.Println("Server started on port " + port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
