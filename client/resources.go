package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/BicaMarius/digital-portofolio-sub001/models"
	"github.com/BicaMarius/digital-portofolio-sub001/services"
)

// Projects

func (c *Client) Projects(ctx context.Context) ([]models.Project, error) {
	return list[models.Project](ctx, c, "/api/projects")
}

func (c *Client) Project(ctx context.Context, id uint) (models.Project, error) {
	return get[models.Project](ctx, c, fmt.Sprintf("/api/projects/%d", id))
}

func (c *Client) CreateProject(ctx context.Context, p models.Project) (models.Project, error) {
	return create[models.Project](ctx, c, "/api/projects", p)
}

func (c *Client) UpdateProject(ctx context.Context, id uint, fields any) (models.Project, error) {
	return patch[models.Project](ctx, c, fmt.Sprintf("/api/projects/%d", id), fields)
}

func (c *Client) DeleteProject(ctx context.Context, id uint) error {
	return del(ctx, c, fmt.Sprintf("/api/projects/%d", id))
}

func (c *Client) TrashedProjects(ctx context.Context) ([]models.Project, error) {
	return list[models.Project](ctx, c, "/api/projects/trash")
}

func (c *Client) RestoreProject(ctx context.Context, id uint) (models.Project, error) {
	return post[models.Project](ctx, c, fmt.Sprintf("/api/projects/%d/restore", id))
}

func (c *Client) PurgeProject(ctx context.Context, id uint) error {
	return del(ctx, c, fmt.Sprintf("/api/projects/%d/purge", id))
}

func (c *Client) EmptyProjectTrash(ctx context.Context) error {
	return del(ctx, c, "/api/projects/trash")
}

// Writings

func (c *Client) Writings(ctx context.Context) ([]models.Writing, error) {
	return list[models.Writing](ctx, c, "/api/writings")
}

func (c *Client) Writing(ctx context.Context, id uint) (models.Writing, error) {
	return get[models.Writing](ctx, c, fmt.Sprintf("/api/writings/%d", id))
}

func (c *Client) CreateWriting(ctx context.Context, w models.Writing) (models.Writing, error) {
	return create[models.Writing](ctx, c, "/api/writings", w)
}

func (c *Client) UpdateWriting(ctx context.Context, id uint, fields any) (models.Writing, error) {
	return patch[models.Writing](ctx, c, fmt.Sprintf("/api/writings/%d", id), fields)
}

func (c *Client) DeleteWriting(ctx context.Context, id uint) error {
	return del(ctx, c, fmt.Sprintf("/api/writings/%d", id))
}

func (c *Client) TrashedWritings(ctx context.Context) ([]models.Writing, error) {
	return list[models.Writing](ctx, c, "/api/writings/trash")
}

func (c *Client) RestoreWriting(ctx context.Context, id uint) (models.Writing, error) {
	return post[models.Writing](ctx, c, fmt.Sprintf("/api/writings/%d/restore", id))
}

func (c *Client) PurgeWriting(ctx context.Context, id uint) error {
	return del(ctx, c, fmt.Sprintf("/api/writings/%d/purge", id))
}

func (c *Client) EmptyWritingTrash(ctx context.Context) error {
	return del(ctx, c, "/api/writings/trash")
}

// Albums

func (c *Client) Albums(ctx context.Context) ([]models.Album, error) {
	return list[models.Album](ctx, c, "/api/albums")
}

func (c *Client) Album(ctx context.Context, id uint) (models.Album, error) {
	return get[models.Album](ctx, c, fmt.Sprintf("/api/albums/%d", id))
}

func (c *Client) CreateAlbum(ctx context.Context, a models.Album) (models.Album, error) {
	return create[models.Album](ctx, c, "/api/albums", a)
}

func (c *Client) UpdateAlbum(ctx context.Context, id uint, fields any) (models.Album, error) {
	return patch[models.Album](ctx, c, fmt.Sprintf("/api/albums/%d", id), fields)
}

func (c *Client) DeleteAlbum(ctx context.Context, id uint) error {
	return del(ctx, c, fmt.Sprintf("/api/albums/%d", id))
}

// Tags

func (c *Client) Tags(ctx context.Context) ([]models.Tag, error) {
	return list[models.Tag](ctx, c, "/api/tags")
}

func (c *Client) Tag(ctx context.Context, id uint) (models.Tag, error) {
	return get[models.Tag](ctx, c, fmt.Sprintf("/api/tags/%d", id))
}

func (c *Client) CreateTag(ctx context.Context, t models.Tag) (models.Tag, error) {
	return create[models.Tag](ctx, c, "/api/tags", t)
}

func (c *Client) UpdateTag(ctx context.Context, id uint, fields any) (models.Tag, error) {
	return patch[models.Tag](ctx, c, fmt.Sprintf("/api/tags/%d", id), fields)
}

func (c *Client) DeleteTag(ctx context.Context, id uint) error {
	return del(ctx, c, fmt.Sprintf("/api/tags/%d", id))
}

// Gallery

func (c *Client) GalleryItems(ctx context.Context) ([]models.GalleryItem, error) {
	return list[models.GalleryItem](ctx, c, "/api/gallery-items")
}

func (c *Client) GalleryItem(ctx context.Context, id uint) (models.GalleryItem, error) {
	return get[models.GalleryItem](ctx, c, fmt.Sprintf("/api/gallery-items/%d", id))
}

func (c *Client) CreateGalleryItem(ctx context.Context, g models.GalleryItem) (models.GalleryItem, error) {
	return create[models.GalleryItem](ctx, c, "/api/gallery-items", g)
}

func (c *Client) UpdateGalleryItem(ctx context.Context, id uint, fields any) (models.GalleryItem, error) {
	return patch[models.GalleryItem](ctx, c, fmt.Sprintf("/api/gallery-items/%d", id), fields)
}

func (c *Client) DeleteGalleryItem(ctx context.Context, id uint) error {
	return del(ctx, c, fmt.Sprintf("/api/gallery-items/%d", id))
}

func (c *Client) PhotoLocations(ctx context.Context) ([]models.PhotoLocation, error) {
	return list[models.PhotoLocation](ctx, c, "/api/photo-locations")
}

func (c *Client) CreatePhotoLocation(ctx context.Context, l models.PhotoLocation) (models.PhotoLocation, error) {
	return create[models.PhotoLocation](ctx, c, "/api/photo-locations", l)
}

func (c *Client) DeletePhotoLocation(ctx context.Context, id uint) error {
	return del(ctx, c, fmt.Sprintf("/api/photo-locations/%d", id))
}

func (c *Client) PhotoDevices(ctx context.Context) ([]models.PhotoDevice, error) {
	return list[models.PhotoDevice](ctx, c, "/api/photo-devices")
}

func (c *Client) CreatePhotoDevice(ctx context.Context, d models.PhotoDevice) (models.PhotoDevice, error) {
	return create[models.PhotoDevice](ctx, c, "/api/photo-devices", d)
}

func (c *Client) DeletePhotoDevice(ctx context.Context, id uint) error {
	return del(ctx, c, fmt.Sprintf("/api/photo-devices/%d", id))
}

// Films

func (c *Client) Films(ctx context.Context) ([]models.Film, error) {
	return list[models.Film](ctx, c, "/api/films")
}

func (c *Client) CreateFilm(ctx context.Context, f models.Film) (models.Film, error) {
	return create[models.Film](ctx, c, "/api/films", f)
}

func (c *Client) UpdateFilm(ctx context.Context, id uint, fields any) (models.Film, error) {
	return patch[models.Film](ctx, c, fmt.Sprintf("/api/films/%d", id), fields)
}

func (c *Client) DeleteFilm(ctx context.Context, id uint) error {
	return del(ctx, c, fmt.Sprintf("/api/films/%d", id))
}

func (c *Client) TrashedFilms(ctx context.Context) ([]models.Film, error) {
	return list[models.Film](ctx, c, "/api/films/trash")
}

func (c *Client) RestoreFilm(ctx context.Context, id uint) (models.Film, error) {
	return post[models.Film](ctx, c, fmt.Sprintf("/api/films/%d/restore", id))
}

// Notes

func (c *Client) Notes(ctx context.Context) ([]models.Note, error) {
	return list[models.Note](ctx, c, "/api/notes")
}

func (c *Client) CreateNote(ctx context.Context, n models.Note) (models.Note, error) {
	return create[models.Note](ctx, c, "/api/notes", n)
}

func (c *Client) UpdateNote(ctx context.Context, id uint, fields any) (models.Note, error) {
	return patch[models.Note](ctx, c, fmt.Sprintf("/api/notes/%d", id), fields)
}

func (c *Client) DeleteNote(ctx context.Context, id uint) error {
	return del(ctx, c, fmt.Sprintf("/api/notes/%d", id))
}

func (c *Client) TrashedNotes(ctx context.Context) ([]models.Note, error) {
	return list[models.Note](ctx, c, "/api/notes/trash")
}

func (c *Client) RestoreNote(ctx context.Context, id uint) (models.Note, error) {
	return post[models.Note](ctx, c, fmt.Sprintf("/api/notes/%d/restore", id))
}

// CV

// CV returns the current CV metadata, or nil when none is uploaded.
func (c *Client) CV(ctx context.Context) (*models.CV, error) {
	var out *models.CV
	err := c.call(ctx, http.MethodGet, "/api/cv", nil, &out)
	return out, err
}

func (c *Client) UploadCV(ctx context.Context, fileName string, pdf []byte) (models.CV, error) {
	var out models.CV
	err := c.callMultipart(ctx, "/api/cv", fileName, "application/pdf", pdf, nil, &out)
	return out, err
}

func (c *Client) DeleteCV(ctx context.Context) error {
	return del(ctx, c, "/api/cv")
}

// Uploads

type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

func (c *Client) UploadImage(ctx context.Context, folder, fileName, contentType string, data []byte) (UploadResult, error) {
	var out UploadResult
	fields := map[string]string{}
	if folder != "" {
		fields["folder"] = folder
	}
	err := c.callMultipart(ctx, "/api/upload/image", fileName, contentType, data, fields, &out)
	return out, err
}

func (c *Client) UploadCover(ctx context.Context, fileName, contentType string, data []byte) (UploadResult, error) {
	var out UploadResult
	err := c.callMultipart(ctx, "/api/upload/cover", fileName, contentType, data, nil, &out)
	return out, err
}

// Music

func (c *Client) MusicToken(ctx context.Context) (services.MusicToken, error) {
	return get[services.MusicToken](ctx, c, "/api/music/token")
}
