package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/SurajNaik1502/TPC/internal/adapter/api/dto"
	"github.com/SurajNaik1502/TPC/internal/adapter/repository"
	"github.com/SurajNaik1502/TPC/internal/domain/chat"
	"github.com/SurajNaik1502/TPC/internal/domain/profile"
	"github.com/SurajNaik1502/TPC/pkg/auth"
	"github.com/SurajNaik1502/TPC/pkg/logger"
	"github.com/SurajNaik1502/TPC/pkg/realtime"
)

const (
	wsWriteWait    = 10 * time.Second
	wsPingInterval = 30 * time.Second
)

// ChatController handles chat rooms, message history and the live
// WebSocket subscription.
type ChatController struct {
	chatRepository    chat.Repository
	profileRepository profile.Repository
	hub               *realtime.Hub
	upgrader          websocket.Upgrader
	log               logger.Logger
}

// NewChatController creates a new ChatController
func NewChatController(chatRepository chat.Repository, profileRepository profile.Repository, hub *realtime.Hub, log logger.Logger) *ChatController {
	return &ChatController{
		chatRepository:    chatRepository,
		profileRepository: profileRepository,
		hub:               hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// same permissive posture as the CORS policy
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		log: log,
	}
}

// ListRooms lists the shared chat rooms
// @Summary List chat rooms
// @Description Lists the shared chat rooms, oldest first
// @Tags chat
// @Produce json
// @Success 200 {array} dto.RoomResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /chat/rooms [get]
func (c *ChatController) ListRooms(ctx *gin.Context) {
	rooms, err := c.chatRepository.ListRooms(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error listing chat rooms", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRoomResponses(rooms))
}

// ListMessages returns the full message history of a room
// @Summary Room message history
// @Description Returns all messages of a room ordered by creation time ascending, decorated with sender profiles
// @Tags chat
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {array} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /chat/rooms/{id}/messages [get]
func (c *ChatController) ListMessages(ctx *gin.Context) {
	roomID := ctx.Param("id")

	if _, err := c.chatRepository.FindRoomByID(ctx, roomID); err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Chat room not found", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error finding chat room", err.Error()))
		return
	}

	messages, err := c.chatRepository.ListMessages(ctx, roomID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error listing messages", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, c.decorate(ctx, messages))
}

// SendMessage appends a message to a room. The stored message is also
// fanned out to the room's live subscribers; clients render the fan-out
// echo rather than appending optimistically.
// @Summary Send a chat message
// @Description Stores a message and notifies the room's live subscribers
// @Tags chat
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param message body dto.SendMessageRequest true "Message body"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security Bearer
// @Router /chat/rooms/{id}/messages [post]
func (c *ChatController) SendMessage(ctx *gin.Context) {
	var request dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Invalid request", err.Error()))
		return
	}

	roomID := ctx.Param("id")
	if _, err := c.chatRepository.FindRoomByID(ctx, roomID); err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Chat room not found", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error finding chat room", err.Error()))
		return
	}

	message := &chat.Message{
		RoomID:   roomID,
		SenderID: auth.CurrentUserID(ctx),
		Body:     request.Body,
		Kind:     chat.KindText,
	}

	if err := c.chatRepository.SaveMessage(ctx, message); err != nil {
		if errors.Is(err, chat.ErrMissingRoom) || errors.Is(err, chat.ErrMissingSender) || errors.Is(err, chat.ErrEmptyBody) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Invalid message", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error saving message", err.Error()))
		return
	}

	response := c.decorateOne(ctx, message)

	// exactly one fan-out notification per stored message
	c.hub.Broadcast(roomID, realtime.Event{
		Room:    roomID,
		Type:    realtime.EventNewMessage,
		Payload: response,
	})

	ctx.JSON(http.StatusCreated, response)
}

// Subscribe upgrades the connection to a WebSocket delivering the room's
// new messages. The hub subscription lives exactly as long as the
// connection: it is released on close, error or room navigation.
// @Summary Subscribe to a room
// @Description WebSocket endpoint delivering new messages of a room as they are stored
// @Tags chat
// @Param id path string true "Room ID"
// @Success 101 {string} string "Switching Protocols"
// @Failure 404 {object} dto.ErrorResponse
// @Router /chat/rooms/{id}/ws [get]
func (c *ChatController) Subscribe(ctx *gin.Context) {
	roomID := ctx.Param("id")

	if _, err := c.chatRepository.FindRoomByID(ctx, roomID); err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Chat room not found", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Error finding chat room", err.Error()))
		return
	}

	conn, err := c.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		c.log.Error("error upgrading chat connection", "room", roomID, "error", err)
		return
	}
	defer conn.Close()

	sub := c.hub.Subscribe(roomID)

	// reader goroutine: the client sends nothing meaningful, but reading
	// is how we learn the connection is gone
	go func() {
		defer sub.Close()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(wsPingInterval)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-sub.C:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteJSON(event); err != nil {
				sub.Close()
				return
			}

		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				sub.Close()
				return
			}
		}
	}
}

// decorate resolves sender profiles for a batch of messages
func (c *ChatController) decorate(ctx *gin.Context, messages []*chat.Message) []dto.MessageResponse {
	senderIDs := make([]string, 0, len(messages))
	seen := make(map[string]bool, len(messages))
	for _, m := range messages {
		if !seen[m.SenderID] {
			seen[m.SenderID] = true
			senderIDs = append(senderIDs, m.SenderID)
		}
	}

	profiles, err := c.profileRepository.FindByUserIDs(ctx, senderIDs)
	if err != nil {
		// decoration is best effort: history still renders with the
		// generic sender label
		c.log.Warn("error batch-resolving sender profiles", "error", err)
		profiles = map[string]*profile.Profile{}
	}

	responses := make([]dto.MessageResponse, 0, len(messages))
	for _, m := range messages {
		responses = append(responses, dto.ToMessageResponse(m, profiles[m.SenderID]))
	}
	return responses
}

func (c *ChatController) decorateOne(ctx *gin.Context, m *chat.Message) dto.MessageResponse {
	p, err := c.profileRepository.FindByUserID(ctx, m.SenderID)
	if err != nil {
		c.log.Warn("error resolving sender profile", "sender", m.SenderID, "error", err)
		p = nil
	}
	return dto.ToMessageResponse(m, p)
}
