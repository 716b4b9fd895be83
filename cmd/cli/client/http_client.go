package client

// http_client.go wraps the libraryhub REST API for the CLI. All methods go
// through the do helper, which injects the bearer token and surfaces the
// server's {"message": ...} error bodies.

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"libraryhub/internal/http-api/dto"
)

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

func NewHTTPClient(apiURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: apiURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SetToken sets the bearer token used on authenticated requests.
func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

// apiError carries the server's message body alongside the status code.
type apiError struct {
	StatusCode int
	Message    string
}

func (e *apiError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.StatusCode)
}

// do performs a request and decodes the response into out (when non-nil).
// Any status other than wantStatus becomes an apiError with the server's
// message.
func (c *HTTPClient) do(method, path string, body any, out any, wantStatus int) error {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		var errBody struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		return &apiError{StatusCode: resp.StatusCode, Message: errBody.Message}
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// Auth

func (c *HTTPClient) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	var result dto.AuthResponse
	if err := c.do("POST", "/api/auth/register", req, &result, http.StatusCreated); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	var result dto.AuthResponse
	if err := c.do("POST", "/api/auth/login", req, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) Refresh(req *dto.RefreshTokenRequest) (*dto.AuthResponse, error) {
	var result dto.AuthResponse
	if err := c.do("POST", "/api/auth/refresh", req, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) Logout() error {
	return c.do("POST", "/api/auth/logout", nil, nil, http.StatusOK)
}

func (c *HTTPClient) Me() (*dto.UserResponse, error) {
	var result dto.UserResponse
	if err := c.do("GET", "/api/auth/me", nil, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return &result, nil
}

// Books

func (c *HTTPClient) ListBooks(search, shelfID string) ([]dto.BookResponse, error) {
	q := url.Values{}
	if search != "" {
		q.Set("search", search)
	}
	if shelfID != "" {
		q.Set("shelfId", shelfID)
	}
	path := "/api/books/"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var result []dto.BookResponse
	if err := c.do("GET", path, nil, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) GetBook(id string) (*dto.BookResponse, error) {
	var result dto.BookResponse
	if err := c.do("GET", "/api/books/"+id, nil, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) CreateBook(req *dto.CreateBookRequest) (*dto.BookResponse, error) {
	var result dto.BookResponse
	if err := c.do("POST", "/api/books/", req, &result, http.StatusCreated); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) UpdateBook(id string, req *dto.UpdateBookRequest) (*dto.BookResponse, error) {
	var result dto.BookResponse
	if err := c.do("PUT", "/api/books/"+id, req, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) DeleteBook(id string) error {
	return c.do("DELETE", "/api/books/"+id, nil, nil, http.StatusOK)
}

// Movies

func (c *HTTPClient) ListMovies(search, shelfID string) ([]dto.MovieResponse, error) {
	q := url.Values{}
	if search != "" {
		q.Set("search", search)
	}
	if shelfID != "" {
		q.Set("shelfId", shelfID)
	}
	path := "/api/movies/"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var result []dto.MovieResponse
	if err := c.do("GET", path, nil, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) GetMovie(id string) (*dto.MovieResponse, error) {
	var result dto.MovieResponse
	if err := c.do("GET", "/api/movies/"+id, nil, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) CreateMovie(req *dto.CreateMovieRequest) (*dto.MovieResponse, error) {
	var result dto.MovieResponse
	if err := c.do("POST", "/api/movies/", req, &result, http.StatusCreated); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) UpdateMovie(id string, req *dto.UpdateMovieRequest) (*dto.MovieResponse, error) {
	var result dto.MovieResponse
	if err := c.do("PUT", "/api/movies/"+id, req, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) UpdateWatchingProgress(id string, req *dto.UpdateWatchingProgressRequest) (*dto.WatchingProgressResponse, error) {
	var result dto.WatchingProgressResponse
	if err := c.do("PUT", "/api/movies/"+id+"/watching-progress", req, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) DeleteMovie(id string) error {
	return c.do("DELETE", "/api/movies/"+id, nil, nil, http.StatusNoContent)
}

// Shelves

func (c *HTTPClient) ListShelves(includeBooks bool) ([]dto.ShelfResponse, error) {
	path := "/api/shelves/"
	if includeBooks {
		path += "?includeBooks=true"
	}

	var result []dto.ShelfResponse
	if err := c.do("GET", path, nil, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) GetShelf(id string) (*dto.ShelfResponse, error) {
	var result dto.ShelfResponse
	if err := c.do("GET", "/api/shelves/"+id, nil, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) CreateShelf(req *dto.CreateShelfRequest) (*dto.ShelfResponse, error) {
	var result dto.ShelfResponse
	if err := c.do("POST", "/api/shelves/", req, &result, http.StatusCreated); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) UpdateShelf(id string, req *dto.UpdateShelfRequest) (*dto.ShelfResponse, error) {
	var result dto.ShelfResponse
	if err := c.do("PUT", "/api/shelves/"+id, req, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) DeleteShelf(id string) error {
	return c.do("DELETE", "/api/shelves/"+id, nil, nil, http.StatusOK)
}

// Categories

func (c *HTTPClient) ListCategories() ([]dto.CategoryResponse, error) {
	var result []dto.CategoryResponse
	if err := c.do("GET", "/api/categories/", nil, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) CreateCategory(req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	var result dto.CategoryResponse
	if err := c.do("POST", "/api/categories/", req, &result, http.StatusCreated); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) DeleteCategory(id string) error {
	return c.do("DELETE", "/api/categories/"+id, nil, nil, http.StatusOK)
}

// Friends

func (c *HTTPClient) ListFriends() ([]dto.FriendResponse, error) {
	var result []dto.FriendResponse
	if err := c.do("GET", "/api/friends/", nil, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) ListFriendRequests() ([]dto.FriendshipResponse, error) {
	var result []dto.FriendshipResponse
	if err := c.do("GET", "/api/friends/requests", nil, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) SearchUsers(query string) ([]dto.UserSearchResponse, error) {
	var result []dto.UserSearchResponse
	path := "/api/friends/search?query=" + url.QueryEscape(query)
	if err := c.do("GET", path, nil, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) SendFriendRequest(addresseeID string) (*dto.FriendshipResponse, error) {
	var result dto.FriendshipResponse
	if err := c.do("POST", "/api/friends/"+addresseeID, nil, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) AcceptFriendRequest(id string) (*dto.FriendshipResponse, error) {
	var result dto.FriendshipResponse
	if err := c.do("PUT", "/api/friends/requests/"+id+"/accept", nil, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) RejectFriendRequest(id string) error {
	return c.do("PUT", "/api/friends/requests/"+id+"/reject", nil, nil, http.StatusNoContent)
}

func (c *HTTPClient) RemoveFriend(friendID string) error {
	return c.do("DELETE", "/api/friends/"+friendID, nil, nil, http.StatusNoContent)
}

// Profiles

func (c *HTTPClient) GetProfile(userID string) (*dto.ProfileResponse, error) {
	var result dto.ProfileResponse
	if err := c.do("GET", "/api/profiles/"+userID, nil, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) GetMyProfile() (*dto.ProfileResponse, error) {
	var result dto.ProfileResponse
	if err := c.do("GET", "/api/profiles/me", nil, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) UpdateMyProfile(req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	var result dto.ProfileResponse
	if err := c.do("PUT", "/api/profiles/me", req, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return &result, nil
}
