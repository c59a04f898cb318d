package main

import (
	"context"
	"log"
	"os"
	"time"

	"hostelnexus-be/internal/entity"
	"hostelnexus-be/internal/repository/specification"
	"hostelnexus-be/internal/repository/unitofwork"
	"hostelnexus-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type menuDay struct {
	day       string
	breakfast []string
	lunch     []string
	snacks    []string
	dinner    []string
}

var weeklyMenu = []menuDay{
	{
		day:       "Monday",
		breakfast: []string{"Idli", "Sambar", "Chutney", "Bread", "Butter", "Fruit"},
		lunch:     []string{"Rice", "Dal", "Vegetable Curry", "Curd", "Papad"},
		snacks:    []string{"Tea/Coffee", "Biscuits", "Samosa"},
		dinner:    []string{"Chapati", "Paneer Butter Masala", "Rice", "Salad", "Sweet"},
	},
	{
		day:       "Tuesday",
		breakfast: []string{"Dosa", "Sambar", "Chutney", "Bread", "Jam", "Fruit"},
		lunch:     []string{"Rice", "Rajma", "Mixed Veg", "Raita", "Papad"},
		snacks:    []string{"Tea/Coffee", "Cake", "Pakora"},
		dinner:    []string{"Chapati", "Aloo Gobi", "Rice", "Salad", "Ice Cream"},
	},
	{
		day:       "Wednesday",
		breakfast: []string{"Poha", "Upma", "Bread", "Butter", "Boiled Egg", "Fruit"},
		lunch:     []string{"Rice", "Dal Tadka", "Aloo Matar", "Curd", "Papad"},
		snacks:    []string{"Tea/Coffee", "Biscuits", "Vada"},
		dinner:    []string{"Chapati", "Chicken Curry/Paneer", "Rice", "Salad", "Custard"},
	},
	{
		day:       "Thursday",
		breakfast: []string{"Paratha", "Curd", "Bread", "Jam", "Fruit"},
		lunch:     []string{"Rice", "Chana Dal", "Bhindi Fry", "Raita", "Papad"},
		snacks:    []string{"Tea/Coffee", "Sandwich", "Biscuits"},
		dinner:    []string{"Chapati", "Mixed Veg Curry", "Rice", "Salad", "Kheer"},
	},
	{
		day:       "Friday",
		breakfast: []string{"Puri", "Aloo Sabzi", "Bread", "Butter", "Fruit"},
		lunch:     []string{"Rice", "Dal Fry", "Palak Paneer", "Curd", "Papad"},
		snacks:    []string{"Tea/Coffee", "Biscuits", "Cutlet"},
		dinner:    []string{"Chapati", "Egg Curry/Matar Paneer", "Rice", "Salad", "Halwa"},
	},
	{
		day:       "Saturday",
		breakfast: []string{"Chole Bhature", "Bread", "Jam", "Fruit"},
		lunch:     []string{"Rice", "Sambar", "Aloo Jeera", "Curd", "Papad"},
		snacks:    []string{"Tea/Coffee", "Biscuits", "Patties"},
		dinner:    []string{"Chapati", "Malai Kofta", "Rice", "Salad", "Fruit Custard"},
	},
	{
		day:       "Sunday",
		breakfast: []string{"Uttapam", "Coconut Chutney", "Bread", "Butter", "Fruit"},
		lunch:     []string{"Rice", "Dal Makhani", "Mixed Veg", "Raita", "Papad"},
		snacks:    []string{"Tea/Coffee", "Biscuits", "French Fries"},
		dinner:    []string{"Chapati", "Butter Chicken/Paneer Butter Masala", "Rice", "Salad", "Sweet"},
	},
}

type faqSeed struct {
	category string
	question string
	answer   string
}

var faqs = []faqSeed{
	{"Hostel Facilities", "What amenities are provided in the hostel rooms?", "Each hostel room is furnished with a bed, study table, chair, wardrobe, ceiling fan, and a window. Common facilities include bathrooms, toilets, and common room on each floor."},
	{"Hostel Facilities", "Is WiFi available in the hostel?", "Yes, WiFi is available throughout the hostel premises. The network name and password will be provided at the time of check-in."},
	{"Hostel Facilities", "How do I report maintenance issues in my room?", "You can report maintenance issues through the \"Room Management\" section in the dashboard. Navigate to the \"Maintenance\" tab and submit a detailed request."},
	{"Hostel Facilities", "Can I change my room after allocation?", "Yes, room change requests can be submitted through the \"Room Management\" section. All requests are subject to availability and approval by the hostel administration."},
	{"Mess & Dining", "What are the mess timings?", "The mess operates during the following hours: Breakfast: 7:30 AM - 9:30 AM, Lunch: 12:30 PM - 2:30 PM, Snacks: 4:30 PM - 5:30 PM, Dinner: 7:30 PM - 9:30 PM."},
	{"Mess & Dining", "Can I change my meal preference?", "Yes, you can change your meal preference (Vegetarian/Non-Vegetarian/Vegan) through the \"Mess Menu\" section in your dashboard."},
	{"Mess & Dining", "Is the mess open on holidays?", "Yes, the mess operates on all days including weekends and holidays. However, timings may vary during special occasions, which will be notified in advance."},
	{"Mess & Dining", "How can I provide feedback on mess food?", "You can provide feedback on the mess food through the \"Feedback\" tab in the \"Mess Menu\" section. Your feedback helps us improve the quality of food and service."},
	{"Hostel Rules", "What is the hostel curfew time?", "The hostel gates close at 10:00 PM. Students are expected to be inside the hostel premises before the curfew time unless they have proper authorization for late entry."},
	{"Hostel Rules", "Are visitors allowed in the hostel?", "Visitors are allowed in the common areas of the hostel from 9:00 AM to 8:00 PM. Visitors must register at the reception desk. Overnight stay of visitors is not permitted."},
	{"Hostel Rules", "What items are prohibited in the hostel?", "Prohibited items include: alcohol, drugs, firearms, inflammable materials, electric heating appliances, and cooking equipment. Possession of these items may result in disciplinary action."},
	{"Hostel Rules", "Is smoking allowed in the hostel?", "No, smoking is strictly prohibited within the hostel premises including rooms, bathrooms, corridors, and common areas. Violation of this rule may result in strict disciplinary action."},
	{"Fees & Payments", "What are the payment methods for hostel fees?", "Hostel fees can be paid through online bank transfer, debit/credit card, or at the finance office. Details for online payment are available in the dashboard."},
	{"Fees & Payments", "Is there a late fee for delayed payments?", "Yes, a late fee of 5% will be charged if payment is not made by the due date. Continuous delay may result in additional penalties as per hostel policy."},
	{"Fees & Payments", "Can I pay my hostel fees in installments?", "Yes, the hostel fee can be paid in installments as per the installment plan announced at the beginning of each semester. Additional charges may apply for installment payments."},
	{"Fees & Payments", "How do I get a receipt for my payment?", "Digital receipts are automatically generated and sent to your registered email address after payment. Physical receipts can be collected from the finance office if required."},
	{"Safety & Security", "Is there 24/7 security in the hostel?", "Yes, the hostel has 24/7 security personnel at the entrance gates. CCTV cameras are installed at strategic locations to ensure safety and security of all residents."},
	{"Safety & Security", "What should I do in case of an emergency?", "In case of emergency, contact the hostel warden or security personnel immediately. Emergency contact numbers are displayed on each floor and in the common areas."},
	{"Safety & Security", "Is there a first-aid facility in the hostel?", "Yes, basic first-aid facilities are available at the hostel reception. For medical emergencies, the hostel has tie-ups with nearby hospitals for quick assistance."},
	{"Safety & Security", "How are valuable items kept secure in the hostel?", "Students are advised to keep their valuables in the personal lockers provided in their rooms. The hostel administration is not responsible for any loss of personal belongings."},
	{"General Information", "What is the check-in and check-out procedure?", "For check-in, report to the hostel reception with your allocation letter. For check-out, clear all dues, return room keys, and get a clearance certificate from the warden."},
	{"General Information", "How do I access the laundry service?", "Laundry services are available on the ground floor. Operating hours are from 8 AM to 8 PM every day. You can drop your clothes and collect them as per the schedule displayed."},
	{"General Information", "Is internet access available in the hostel?", "Yes, high-speed internet access is available through WiFi throughout the hostel premises. The network details will be provided during check-in."},
	{"General Information", "How can I contact the hostel administration?", "You can contact the hostel administration by visiting the hostel office during working hours (9 AM - 5 PM) or by sending an email to admin@hostelnexus.com."},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	log.Println("Seeding students...")
	johnId := seedStudent(ctx, uow, "john@example.com", "John Doe", "123-456-7890", "A101", "A", entity.MessPreferenceVegetarian, 0)
	seedStudent(ctx, uow, "jane@example.com", "Jane Smith", "098-765-4321", "B205", "B", entity.MessPreferenceNonVegetarian, 1200)

	log.Println("Seeding rooms...")
	seedRoom(ctx, uow, "A101", "A", "Double Sharing", "Good", []string{"Bed", "Study Table", "Wardrobe", "Ceiling Fan"}, 2)
	seedRoom(ctx, uow, "B205", "B", "Single", "Good", []string{"Bed", "Study Table", "Wardrobe", "Ceiling Fan", "Attached Bathroom"}, 1)

	log.Println("Seeding weekly menu...")
	for _, m := range weeklyMenu {
		menu := &entity.MessMenu{
			Id:        uuid.New(),
			Day:       m.day,
			Breakfast: m.breakfast,
			Lunch:     m.lunch,
			Snacks:    m.snacks,
			Dinner:    m.dinner,
			UpdatedAt: time.Now(),
		}
		if err := uow.MessMenuRepository().Upsert(ctx, menu); err != nil {
			log.Fatalf("Error: failed to seed menu for %s: %v", m.day, err)
		}
	}

	log.Println("Seeding sample complaint...")
	if johnId != uuid.Nil {
		existing, _ := uow.ComplaintRepository().FindAll(ctx, specification.ByStudentID{StudentID: johnId})
		if len(existing) == 0 {
			complaint := &entity.Complaint{
				Id:          uuid.New(),
				StudentId:   johnId,
				Title:       "Water leakage in bathroom",
				Description: "There is water leaking from the ceiling in the bathroom.",
				Category:    entity.CategoryRoom,
				Status:      entity.ComplaintStatusInProgress,
				CreatedAt:   time.Now(),
			}
			if err := uow.ComplaintRepository().Create(ctx, complaint); err != nil {
				log.Fatalf("Error: failed to seed complaint: %v", err)
			}
		}
	}

	log.Println("Seeding FAQs...")
	existingFaqs, err := uow.FaqRepository().FindAll(ctx)
	if err != nil {
		log.Fatalf("Error: failed to check existing FAQs: %v", err)
	}
	if len(existingFaqs) == 0 {
		for i, f := range faqs {
			faq := &entity.Faq{
				Id:        uuid.New(),
				Category:  f.category,
				Question:  f.question,
				Answer:    f.answer,
				SortOrder: i,
			}
			if err := uow.FaqRepository().Create(ctx, faq); err != nil {
				log.Fatalf("Error: failed to seed FAQ: %v", err)
			}
		}
	}

	log.Println("Seed complete.")
}

func seedStudent(ctx context.Context, uow unitofwork.UnitOfWork, email, fullName, phone, roomNumber, block, messPreference string, dueAmount int) uuid.UUID {
	existing, err := uow.StudentRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		log.Fatalf("Error: failed to check student %s: %v", email, err)
	}
	if existing != nil {
		return existing.Id
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error: failed to hash password: %v", err)
	}
	hashStr := string(hash)

	now := time.Now()
	student := &entity.Student{
		Id:             uuid.New(),
		Email:          email,
		FullName:       fullName,
		Phone:          phone,
		PasswordHash:   &hashStr,
		RoomNumber:     roomNumber,
		HostelBlock:    block,
		MessPreference: messPreference,
		JoinDate:       now,
		DueAmount:      dueAmount,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uow.StudentRepository().Create(ctx, student); err != nil {
		log.Fatalf("Error: failed to seed student %s: %v", email, err)
	}
	return student.Id
}

func seedRoom(ctx context.Context, uow unitofwork.UnitOfWork, number, block, roomType, condition string, amenities []string, capacity int) {
	existing, err := uow.RoomRepository().FindOne(ctx, specification.Filter("number", number))
	if err != nil {
		log.Fatalf("Error: failed to check room %s: %v", number, err)
	}
	if existing != nil {
		return
	}

	now := time.Now()
	room := &entity.Room{
		Id:        uuid.New(),
		Number:    number,
		Block:     block,
		Type:      roomType,
		Condition: condition,
		Amenities: amenities,
		Capacity:  capacity,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uow.RoomRepository().Create(ctx, room); err != nil {
		log.Fatalf("Error: failed to seed room %s: %v", number, err)
	}
}
