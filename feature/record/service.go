package record

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"citizen-collect/core/diff"
	"citizen-collect/core/storage"
	"citizen-collect/feature/project"
	"citizen-collect/feature/record/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Listing scopes, matching the mobile client's type parameter.
const (
	ScopeOwn         = 0
	ScopeOwnVerified = 1
	ScopeAll         = 2
)

// Summary aggregates record counts for a user or a project.
type Summary struct {
	Uploaded int64 `json:"uploaded"`
	Verified int64 `json:"verified"`
	Total    int64 `json:"total"`
}

// Service is the record reconciliation engine. It converges the stored state
// of a record (images, survey answers) with each submission of the same
// client uuid: unchanged images keep their storage key, dropped images are
// deleted, and answers are overwritten in place.
type Service struct {
	store     Store
	projects  project.ProjectRepository
	sections  project.SectionRepository
	questions project.QuestionRepository
	blobs     storage.BlobStore
	logger    *zap.Logger
	locks     *keyLock
}

// NewService creates a new record service.
func NewService(store Store, projects project.ProjectRepository, sections project.SectionRepository,
	questions project.QuestionRepository, blobs storage.BlobStore, logger *zap.Logger) *Service {
	return &Service{
		store:     store,
		projects:  projects,
		sections:  sections,
		questions: questions,
		blobs:     blobs,
		logger:    logger,
		locks:     newKeyLock(),
	}
}

// Record accepts one submission for the given owner. modelJSON is the record
// metadata, files are the client's complete current image set, and
// resultsJSON maps question ids to answers. An empty files slice or empty
// resultsJSON means "no change to that part". The call runs in a single
// database transaction; blob writes are not transactional with the commit,
// so a failed call can leave orphaned blobs but never inconsistent rows.
func (s *Service) Record(ctx context.Context, ownerID int64, modelJSON string, files []Upload, resultsJSON string) (*models.Record, error) {
	sub, err := decodeSubmission(modelJSON)
	if err != nil {
		return nil, err
	}

	var answers map[string]AnswerValue
	if resultsJSON != "" {
		if answers, err = decodeAnswers(resultsJSON); err != nil {
			return nil, err
		}
	}

	// Parse every file name before touching the database or the blob store,
	// so one malformed name fails the call without partial writes.
	candidates, err := buildCandidates(files)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(fmt.Sprintf("%d|%s", ownerID, strings.ToLower(sub.UUID)))
	defer unlock()

	var rec *models.Record
	var staleBlobs []string
	err = s.store.Transaction(ctx, func(st Store) error {
		var err error
		if rec, err = s.upsertRecord(ctx, st, ownerID, sub); err != nil {
			return err
		}
		if len(files) > 0 {
			if staleBlobs, err = s.reconcileImages(ctx, st, rec, candidates, files); err != nil {
				return err
			}
		}
		if answers != nil {
			if err := s.upsertAnswers(ctx, st, rec, answers); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Blobs of removed images are deleted only once the row deletes are
	// committed; a rollback must never leave an Image row without its blob.
	for _, key := range staleBlobs {
		if err := s.blobs.Delete(ctx, key); err != nil {
			s.logger.Warn("Failed to delete obsolete blob",
				zap.String("storage_key", key),
				zap.Error(err))
		}
	}
	return rec, nil
}

// upsertRecord finds the owner's record for the submission uuid or creates
// it, refreshes its metadata, and saves it so child rows can reference its id.
func (s *Service) upsertRecord(ctx context.Context, st Store, ownerID int64, sub *Submission) (*models.Record, error) {
	existing, err := st.Records().FindByOwnerAndUUID(ctx, ownerID, sub.UUID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	rec := &models.Record{}
	if len(existing) > 0 {
		rec = &existing[0]
		rec.UpdatedAt = &now
	} else {
		rec.CreatedAt = now
	}

	rec.UUID = sub.UUID
	rec.UserID = ownerID
	rec.Latitude = sub.Latitude
	rec.Longitude = sub.Longitude
	rec.Accuracy = sub.Accuracy
	rec.StartDate = timestampValue(sub.StartDate)
	rec.FinishDate = timestampValue(sub.FinishDate)

	if sub.ProjectID != 0 {
		proj, err := s.projects.FindByID(ctx, sub.ProjectID)
		if err != nil {
			return nil, err
		}
		if proj == nil {
			// Saved without a project link; field data collected against a
			// removed project is still worth keeping.
			s.logger.Warn("Submission references unknown project",
				zap.Int64("project_id", sub.ProjectID),
				zap.String("uuid", sub.UUID))
		} else {
			rec.ProjectID = &proj.ID
		}
	}

	if err := st.Records().Save(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func timestampValue(ts *Timestamp) *time.Time {
	if ts == nil || ts.IsZero() {
		return nil
	}
	t := ts.Time
	return &t
}

// buildCandidates maps each upload to the image row it would become.
func buildCandidates(files []Upload) ([]models.Image, error) {
	candidates := make([]models.Image, 0, len(files))
	for _, f := range files {
		sectionID, err := parseSectionID(f.FileName)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, models.Image{
			SectionID:        sectionID,
			OriginalFileName: f.FileName,
		})
	}
	return candidates, nil
}

// reconcileImages converges the stored image rows with the uploaded set.
// Files whose natural key is already stored are left untouched, new files
// are stored and inserted, and stored rows absent from the upload are
// deleted one by one. It returns the storage keys of the deleted rows; the
// caller removes those blobs after the transaction commits.
func (s *Service) reconcileImages(ctx context.Context, st Store, rec *models.Record, candidates []models.Image, files []Upload) ([]string, error) {
	current, err := st.Images().FindByRecordID(ctx, rec.ID)
	if err != nil {
		return nil, err
	}

	keyOf := func(img models.Image) string {
		return strings.ToLower(fmt.Sprintf("%s|%d|%s", rec.UUID, img.SectionID, img.OriginalFileName))
	}
	res := diff.ByKey(candidates, current, keyOf)

	newKeys := make(map[string]struct{}, len(res.OnlyInFirst))
	for _, img := range res.OnlyInFirst {
		newKeys[keyOf(img)] = struct{}{}
	}

	for i, f := range files {
		key := keyOf(candidates[i])
		if _, isNew := newKeys[key]; !isNew {
			continue
		}
		// A duplicate name inside one submission is stored once.
		delete(newKeys, key)

		if err := s.storeImage(ctx, st, rec, candidates[i], f); err != nil {
			return nil, err
		}
	}

	staleBlobs := make([]string, 0, len(res.OnlyInSecond))
	for _, img := range res.OnlyInSecond {
		if err := st.Images().DeleteByNaturalKey(ctx, rec.ID, img.SectionID, img.OriginalFileName); err != nil {
			return nil, err
		}
		staleBlobs = append(staleBlobs, img.StorageKey)
	}

	return staleBlobs, nil
}

// storeImage uploads one new file and inserts its image row.
func (s *Service) storeImage(ctx context.Context, st Store, rec *models.Record, candidate models.Image, f Upload) error {
	section, err := s.sections.FindByID(ctx, candidate.SectionID)
	if err != nil {
		return err
	}
	if section == nil {
		return &NotFoundError{Entity: "section", ID: candidate.SectionID}
	}

	var projectID int64
	if rec.ProjectID != nil {
		projectID = *rec.ProjectID
	}
	ext := filepath.Ext(f.FileName)
	key := fmt.Sprintf("%d_%d_%d_%s%s", projectID, candidate.SectionID, rec.ID, uuid.NewString(), ext)

	content, err := f.Open()
	if err != nil {
		return &StorageError{Key: key, Err: err}
	}
	defer content.Close()

	obj, err := s.blobs.Store(ctx, key, content, f.Size, f.ContentType)
	if err != nil {
		return &StorageError{Key: key, Err: err}
	}

	img := models.Image{
		RecordID:         rec.ID,
		SectionID:        candidate.SectionID,
		OriginalFileName: f.FileName,
		StorageKey:       obj.Key,
		Status:           models.ImageStatusUnverified,
		CreatedAt:        time.Now(),
	}
	return st.Images().Save(ctx, &img)
}

// upsertAnswers writes one answer row per known question id, overwriting any
// previous answer. AnsweredAt is reset even when the content is unchanged.
func (s *Service) upsertAnswers(ctx context.Context, st Store, rec *models.Record, answers map[string]AnswerValue) error {
	for key, value := range answers {
		questionID, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			// Stale client questionnaires may carry keys we no longer know.
			s.logger.Warn("Skipping non-numeric question id", zap.String("question_id", key))
			continue
		}
		question, err := s.questions.FindByID(ctx, questionID)
		if err != nil {
			return err
		}
		if question == nil {
			s.logger.Warn("Skipping unknown question id", zap.Int64("question_id", questionID))
			continue
		}

		ans, err := st.Answers().FindByRecordAndQuestion(ctx, rec.ID, question.ID)
		if err != nil {
			return err
		}
		if ans == nil {
			ans = &models.SurveyAnswer{
				RecordID:   rec.ID,
				QuestionID: question.ID,
			}
		}

		response, err := value.Encode()
		if err != nil {
			return &ValidationError{Field: "results", Reason: err.Error()}
		}
		ans.Response = response
		ans.AnsweredAt = time.Now()

		if err := st.Answers().Save(ctx, ans); err != nil {
			return err
		}
	}
	return nil
}

// ListByOwner returns records visible to the owner under the given scope.
func (s *Service) ListByOwner(ctx context.Context, ownerID int64, scope int) ([]models.Record, error) {
	return s.store.Records().List(ctx, scopedFilter(ownerID, nil, scope))
}

// ListByProject returns a project's records visible to the owner under the
// given scope.
func (s *Service) ListByProject(ctx context.Context, ownerID, projectID int64, scope int) ([]models.Record, error) {
	return s.store.Records().List(ctx, scopedFilter(ownerID, &projectID, scope))
}

func scopedFilter(ownerID int64, projectID *int64, scope int) Filter {
	f := Filter{ProjectID: projectID}
	switch scope {
	case ScopeAll:
	case ScopeOwnVerified:
		verified := models.StatusVerified
		f.OwnerID = &ownerID
		f.Status = &verified
	default:
		f.OwnerID = &ownerID
	}
	return f
}

// OwnerSummary returns the owner's upload counts next to the global total.
func (s *Service) OwnerSummary(ctx context.Context, ownerID int64) (Summary, error) {
	return s.summarize(ctx, Filter{OwnerID: &ownerID}, Filter{})
}

// ProjectSummary returns the owner's upload counts within one project next
// to the project total.
func (s *Service) ProjectSummary(ctx context.Context, ownerID, projectID int64) (Summary, error) {
	return s.summarize(ctx, Filter{OwnerID: &ownerID, ProjectID: &projectID}, Filter{ProjectID: &projectID})
}

func (s *Service) summarize(ctx context.Context, own, total Filter) (Summary, error) {
	var sum Summary
	var err error

	if sum.Uploaded, err = s.store.Records().Count(ctx, own); err != nil {
		return Summary{}, err
	}
	verified := models.StatusVerified
	own.Status = &verified
	if sum.Verified, err = s.store.Records().Count(ctx, own); err != nil {
		return Summary{}, err
	}
	if sum.Total, err = s.store.Records().Count(ctx, total); err != nil {
		return Summary{}, err
	}
	return sum, nil
}

// UpdateStatus sets a record's verification status, stamping the verifier
// and the verification time.
func (s *Service) UpdateStatus(ctx context.Context, recordID, verificatorID int64, status int) error {
	rec, err := s.store.Records().FindByID(ctx, recordID)
	if err != nil {
		return err
	}
	if rec == nil {
		return &NotFoundError{Entity: "record", ID: recordID}
	}

	now := time.Now()
	rec.Status = status
	rec.VerifiedAt = &now
	rec.VerificatorID = &verificatorID
	return s.store.Records().Save(ctx, rec)
}

// UpdateImageStatus sets an image's review status.
func (s *Service) UpdateImageStatus(ctx context.Context, imageID int64, status int) error {
	img, err := s.store.Images().FindByID(ctx, imageID)
	if err != nil {
		return err
	}
	if img == nil {
		return &NotFoundError{Entity: "image", ID: imageID}
	}

	img.Status = status
	return s.store.Images().Save(ctx, img)
}
