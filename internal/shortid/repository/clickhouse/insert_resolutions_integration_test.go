package clickhouse

import (
	"errors"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/golang/mock/gomock"

	"github.com/goodnatureofminers/blockinsight7000-shortid/internal/shortid/model"
)

func (s *RepositorySuite) TestInsertResolutions() {
	now := time.Now().UTC().Truncate(time.Millisecond)
	outcomes := []model.Outcome{
		{
			BlockHash:     chainhash.DoubleHashH([]byte("a")),
			Status:        model.StatusComplete,
			ExpectedCount: 2,
			ResolvedCount: 2,
			Attempts:      1,
			ProcessedAt:   now,
		},
		{
			BlockHash:     chainhash.DoubleHashH([]byte("b")),
			Status:        model.StatusIncomplete,
			ExpectedCount: 3,
			ResolvedCount: 2,
			Attempts:      1,
			Err:           errors.New("resolved 2 of 3"),
			ProcessedAt:   now,
		},
	}

	s.metrics.EXPECT().Observe("insert_resolutions", gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertResolutions(s.testCtx, outcomes))
	s.Equal(uint64(len(outcomes)), s.countRows("shortid_resolutions"))
}

func (s *RepositorySuite) TestInsertResolutionsKeepsLatestStatus() {
	blockHash := chainhash.DoubleHashH([]byte("c"))
	first := model.Outcome{
		BlockHash:     blockHash,
		Status:        model.StatusUnavailable,
		ExpectedCount: 1,
		Attempts:      3,
		Err:           model.ErrBlockUnavailable,
		ProcessedAt:   time.Now().UTC(),
	}
	second := first
	second.Status = model.StatusComplete
	second.ResolvedCount = 1
	second.Err = nil

	s.metrics.EXPECT().Observe("insert_resolutions", gomock.Nil(), gomock.Any()).Times(2)

	s.Require().NoError(s.repo.InsertResolutions(s.testCtx, []model.Outcome{first}))
	time.Sleep(10 * time.Millisecond)
	s.Require().NoError(s.repo.InsertResolutions(s.testCtx, []model.Outcome{second}))

	rows, err := s.reader.Query(s.testCtx, `
SELECT argMax(status, updated_at)
FROM shortid_resolutions
WHERE network = ? AND block_hash = ?`, "regtest", blockHash.String())
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(rows.Close())
	}()

	var status string
	s.Require().True(rows.Next())
	s.Require().NoError(rows.Scan(&status))
	s.Equal(string(model.StatusComplete), status)
}
