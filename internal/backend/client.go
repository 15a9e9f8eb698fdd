// Package backend is the REST client for the external hotel backend,
// the system of record for rooms, reservations and loyalty balances.
// This process never persists any of that data itself.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/elodie-boweren/MyBooking-sub000/internal/booking"
	"github.com/elodie-boweren/MyBooking-sub000/internal/engine"
	"github.com/elodie-boweren/MyBooking-sub000/internal/logger"
	"github.com/elodie-boweren/MyBooking-sub000/internal/session"
)

const dateLayout = "2006-01-02"

type Config struct {
	L       *logger.Logger
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	l          *logger.Logger
	baseURL    string
	httpClient *http.Client
}

func New(conf Config) *Client {
	return &Client{
		l:       conf.L,
		baseURL: conf.BaseURL,
		httpClient: &http.Client{
			Timeout: conf.Timeout,
		},
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody *bytes.Buffer

	if body != nil {
		reqBody = &bytes.Buffer{}
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return nil, fmt.Errorf("encode request body for %s: %w", path, err)
		}
	}

	var (
		req *http.Request
		err error
	)

	if reqBody != nil {
		req, err = http.NewRequestWithContext(ctx, method, u, reqBody)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, u, nil)
	}

	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", path, err)
	}

	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Credentials come from the calling session, never from this
	// client's own state.
	if token, ok := session.TokenFromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	if userID, ok := session.UserIDFromContext(ctx); ok && userID != "" {
		req.Header.Set("X-User-Id", userID)
	}

	return req, nil
}

func decode(resp *http.Response, endpoint string, out any) error {
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return newMalformedResponse(endpoint, fmt.Sprintf("decode body: %v", err))
	}

	return nil
}

// readMessage drains a non-2xx body looking for the documented
// `{message}` shape; anything else yields an empty message.
func readMessage(resp *http.Response) string {
	defer resp.Body.Close()

	var e errorDTO

	_ = json.NewDecoder(resp.Body).Decode(&e)

	return e.Message
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{
			Endpoint:   path,
			StatusCode: resp.StatusCode,
			Message:    readMessage(resp),
		}
	}

	return decode(resp, path, out)
}

// maxRoomPages bounds the pagination walk. The `last` flag comes from
// the backend and gets the same distrust as any other response field:
// a backend that never sets it must not wedge the calling request.
const maxRoomPages = 100

// ListRooms fetches the room catalogue. The backend pages the list in
// a `content` envelope; pages are followed until the last one.
func (c *Client) ListRooms(ctx context.Context) ([]engine.RoomOffer, error) {
	var rooms []engine.RoomOffer

	for page := 0; ; page++ {
		if page >= maxRoomPages {
			return nil, newMalformedResponse("/rooms", fmt.Sprintf("pagination did not terminate within %d pages", maxRoomPages))
		}
		query := url.Values{}
		query.Set("page", fmt.Sprintf("%d", page))

		var dto roomPageDTO

		if err := c.get(ctx, "/rooms", query, &dto); err != nil {
			return nil, err
		}

		if dto.Content == nil {
			return nil, newMalformedResponse("/rooms", "missing content field")
		}

		for i := range dto.Content {
			room, err := dto.Content[i].toDomain()
			if err != nil {
				return nil, newMalformedResponse("/rooms", err.Error())
			}

			rooms = append(rooms, room)
		}

		if dto.Last == nil || *dto.Last {
			return rooms, nil
		}
	}
}

// RoomAvailable asks the backend whether a room is free for the whole
// range. This is the authoritative conflict check local validation
// defers to.
func (c *Client) RoomAvailable(ctx context.Context, roomID string, stay engine.Stay) (bool, error) {
	path := fmt.Sprintf("/rooms/%s/availability", url.PathEscape(roomID))

	query := url.Values{}
	query.Set("checkIn", stay.CheckIn.UTC().Format(dateLayout))
	query.Set("checkOut", stay.CheckOut.UTC().Format(dateLayout))

	var dto availabilityDTO

	if err := c.get(ctx, path, query, &dto); err != nil {
		return false, err
	}

	if dto.Available == nil {
		return false, newMalformedResponse(path, "missing available field")
	}

	return *dto.Available, nil
}

// LoyaltyAccount fetches the caller's point balance snapshot.
func (c *Client) LoyaltyAccount(ctx context.Context) (engine.LoyaltyAccount, error) {
	var dto loyaltyAccountDTO

	if err := c.get(ctx, "/loyalty/account", nil, &dto); err != nil {
		return engine.LoyaltyAccount{}, err
	}

	account, err := dto.toDomain()
	if err != nil {
		return engine.LoyaltyAccount{}, newMalformedResponse("/loyalty/account", err.Error())
	}

	return account, nil
}

// CreateReservation submits one reservation. Callers own the
// at-most-once guarantee; this method performs no retries of its own.
func (c *Client) CreateReservation(ctx context.Context, reservation *booking.Request) (*booking.Confirmation, error) {
	const path = "/client/reservations"

	req, err := c.newRequest(ctx, http.MethodPost, path, nil, reservation)
	if err != nil {
		return nil, err
	}

	if key, ok := booking.IdempotencyKeyFromContext(ctx); ok && key != "" {
		req.Header.Set("Idempotency-Key", key)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.l.LogErrorf("Reservation submit transport failure: %v", err.Error())

		return nil, booking.NewSubmissionError(0, "")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, booking.NewSubmissionError(resp.StatusCode, readMessage(resp))
	}

	var confirmation booking.Confirmation

	if err := decode(resp, path, &confirmation); err != nil {
		return nil, err
	}

	return &confirmation, nil
}
