package constant

const (
	ChatMessageRoleUser   = "user"
	ChatMessageRoleModel  = "model"
	ChatMessageRoleSystem = "system"
)

// WelcomeMessage seeds every new chat session.
const WelcomeMessage = "Hello! I'm your HostelNexus assistant. How can I help you today?"

// Canned replies keyed by classified intent. The wording matches what the
// hostel front-desk publishes, so keep them stable.
const (
	BookRoomReply = "To book a room, please visit the Room Management section on the dashboard. You can check available rooms and submit a booking request there."

	MessMenuReply = "You can check the mess menu for the entire week in the Mess Menu section. It includes breakfast, lunch, snacks, and dinner for each day."

	PaymentReply = "You can view your payment details and outstanding dues on your dashboard. For payment methods, please contact the hostel administration office."

	WifiReply = "WiFi is available throughout the hostel. The network name is \"HostelNet\" and the password can be obtained from the reception desk."

	LaundryReply = "Laundry services are available on the ground floor. Operating hours are from 8 AM to 8 PM every day."

	GreetingReply = "Hello! How can I assist you with hostel or mess related queries today?"

	// FallbackReply is also the degraded answer when the generation service
	// errors out or returns no usable text.
	FallbackReply = "I'm not sure I understand. Could you please rephrase your question or check the FAQ section for commonly asked questions?"
)

// Complaint capture prompts, one per dialogue step.
const (
	CaptureAskTitleReply = "I'm sorry to hear you're facing an issue. Let's file a complaint together. First, what should be the title of your complaint?"

	CaptureAskCategoryReply = "Got it. Which category does this fall under? Please reply with exactly one of: Room, Mess, Facility, Other."

	CaptureInvalidCategoryReply = "That doesn't look like a valid category. Please reply with exactly one of: Room, Mess, Facility, Other."

	CaptureAskDescriptionReply = "Thanks. Now, please describe the problem in a few sentences."

	CaptureSubmittedReply = "Thank you! Your complaint has been submitted. You can track its status anytime in the Complaints section."

	CaptureNotLoggedInReply = "I'm sorry, I couldn't submit your complaint because you are not logged in. Please log in and try again."

	CaptureCancelledReply = "No problem, I've discarded that complaint. How else can I help you?"

	CaptureSubmitFailedReply = "Sorry, something went wrong while submitting your complaint. Please try again later or use the Complaints section."
)

// CaptureCancelKeyword aborts complaint capture from any step.
const CaptureCancelKeyword = "cancel"

// ChatSystemInstruction is sent ahead of the transcript on every delegated
// generation call.
const ChatSystemInstruction = `You are an AI assistant for HostelNexus, a hostel management system.
Help students with their queries about hostel facilities, mess menu, room bookings,
and complaints. Be friendly, helpful, and concise.
If users want to file a complaint, guide them through the process and recognize complaint intent.
For room related issues, provide guidance on the room management section.
For mess related queries, refer to the mess menu section.
Provide practical answers based on typical hostel management scenarios.`
