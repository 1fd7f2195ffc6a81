package handlers

import (
	"mindwell/models"
	"mindwell/services/chat"
	"mindwell/services/mood"
	"mindwell/services/patient"
	"mindwell/services/scheduling"
	"mindwell/services/therapist"
	"mindwell/services/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct so routes
// stay declarative and wiring lives in main.
type HandlerBundle struct {
	// Auth endpoints
	Signup gin.HandlerFunc
	Login  gin.HandlerFunc
	Logout gin.HandlerFunc

	// Account endpoints
	GetMe    gin.HandlerFunc
	UpdateMe gin.HandlerFunc
	DeleteMe gin.HandlerFunc

	// Chat endpoints
	SendMessage              gin.HandlerFunc
	GetPatientTherapistChats gin.HandlerFunc
	GetTherapistPatientChats gin.HandlerFunc
	GetPatientBotChats       gin.HandlerFunc
	GetTherapistBotChats     gin.HandlerFunc
	MarkRead                 gin.HandlerFunc
	UnreadCount              gin.HandlerFunc

	// Session endpoints
	AvailableSlots      gin.HandlerFunc
	BookSession         gin.HandlerFunc
	ListSessions        gin.HandlerFunc
	GetSession          gin.HandlerFunc
	CancelSession       gin.HandlerFunc
	UpdateSessionStatus gin.HandlerFunc
	UpdateSessionNotes  gin.HandlerFunc

	// Mood endpoints
	AddMood    gin.HandlerFunc
	ListMoods  gin.HandlerFunc
	GetMood    gin.HandlerFunc
	DeleteMood gin.HandlerFunc

	// Profile endpoints
	ListTherapists         gin.HandlerFunc
	GetTherapistProfile    gin.HandlerFunc
	UpdateTherapistProfile gin.HandlerFunc
	SetupAvailability      gin.HandlerFunc
	ListPatients           gin.HandlerFunc
	GetPatient             gin.HandlerFunc
	GetPatientProfile      gin.HandlerFunc
	UpdatePatientProfile   gin.HandlerFunc
}

// NewHandlerBundle binds every handler to its service.
func NewHandlerBundle(
	users user.UserService,
	chats chat.ChatService,
	sessions scheduling.SchedulingService,
	moods mood.MoodService,
	therapists therapist.TherapistService,
	patients patient.PatientService,
) *HandlerBundle {
	return &HandlerBundle{
		Signup: SignupHandler(users),
		Login:  LoginHandler(users),
		Logout: LogoutHandler(users),

		GetMe:    GetMeHandler(users),
		UpdateMe: UpdateMeHandler(users),
		DeleteMe: DeleteMeHandler(users),

		SendMessage:              SendMessageHandler(chats),
		GetPatientTherapistChats: GetPatientTherapistChatsHandler(chats),
		GetTherapistPatientChats: GetTherapistPatientChatsHandler(chats),
		GetPatientBotChats:       GetBotChatsHandler(chats, models.ChatPatientBot),
		GetTherapistBotChats:     GetBotChatsHandler(chats, models.ChatTherapistBot),
		MarkRead:                 MarkReadHandler(chats),
		UnreadCount:              UnreadCountHandler(chats),

		AvailableSlots:      AvailableSlotsHandler(sessions),
		BookSession:         BookSessionHandler(sessions),
		ListSessions:        ListSessionsHandler(sessions),
		GetSession:          GetSessionHandler(sessions),
		CancelSession:       CancelSessionHandler(sessions),
		UpdateSessionStatus: UpdateSessionStatusHandler(sessions),
		UpdateSessionNotes:  UpdateSessionNotesHandler(sessions),

		AddMood:    AddMoodHandler(moods),
		ListMoods:  ListMoodsHandler(moods),
		GetMood:    GetMoodHandler(moods),
		DeleteMood: DeleteMoodHandler(moods),

		ListTherapists:         ListTherapistsHandler(therapists),
		GetTherapistProfile:    GetTherapistProfileHandler(therapists),
		UpdateTherapistProfile: UpdateTherapistProfileHandler(therapists),
		SetupAvailability:      SetupAvailabilityHandler(therapists),
		ListPatients:           ListPatientsHandler(patients),
		GetPatient:             GetPatientHandler(patients),
		GetPatientProfile:      GetPatientProfileHandler(patients),
		UpdatePatientProfile:   UpdatePatientProfileHandler(patients),
	}
}
