package bootstrap

import (
	"log"
	"time"

	"hostelnexus-be/internal/config"
	"hostelnexus-be/internal/controller"
	"hostelnexus-be/internal/pkg/logger"
	"hostelnexus-be/internal/pkg/mailer"
	"hostelnexus-be/internal/repository/memory"
	"hostelnexus-be/internal/repository/unitofwork"
	"hostelnexus-be/internal/service"
	"hostelnexus-be/pkg/dialog"
	"hostelnexus-be/pkg/llm/factory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	StudentController   controller.IStudentController
	RoomController      controller.IRoomController
	MessController      controller.IMessController
	ComplaintController controller.IComplaintController
	FaqController       controller.IFaqController
	ChatbotController   controller.IChatbotController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	dialogLogger := logger.NewIsolatedLogger(cfg.Chat.DialogLogFilePath)

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. LLM Provider
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// In-memory dialogue state
	dialogRepo := memory.NewDialogRepository()

	// 4. Services
	publisherService := service.NewPublisherService(pubSub)
	complaintService := service.NewComplaintService(uowFactory, publisherService, cfg.Keys.ComplaintTopic, cfg.Keys.ComplaintStatusTopic, sysLogger)

	engine := dialog.NewEngine(llmProvider, complaintService, dialogRepo, dialogLogger, cfg.Chat.ReplyDelay)

	authService := service.NewAuthService(uowFactory, time.Duration(cfg.Keys.TokenTTLHours)*time.Hour)
	studentService := service.NewStudentService(uowFactory)
	roomService := service.NewRoomService(uowFactory)
	messService := service.NewMessService(uowFactory)
	faqService := service.NewFaqService(uowFactory)
	chatbotService := service.NewChatbotService(uowFactory, engine, sysLogger)

	consumerService := service.NewConsumerService(pubSub, cfg.Keys.ComplaintTopic, cfg.Keys.ComplaintStatusTopic, uowFactory, emailService)

	// 5. Controllers
	return &Container{
		AuthController:      controller.NewAuthController(authService),
		StudentController:   controller.NewStudentController(studentService),
		RoomController:      controller.NewRoomController(roomService),
		MessController:      controller.NewMessController(messService),
		ComplaintController: controller.NewComplaintController(complaintService),
		FaqController:       controller.NewFaqController(faqService),
		ChatbotController:   controller.NewChatbotController(chatbotService),
		ConsumerService:     consumerService,
		Logger:              sysLogger,
	}
}
