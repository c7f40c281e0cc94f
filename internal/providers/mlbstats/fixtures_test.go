package mlbstats

const scheduleJSON = `{
	"dates": [
		{"date": "2024-06-02", "games": [
			{"gamePk": 745001, "gameType": "R"},
			{"gamePk": 745002, "gameType": "R"}
		]}
	]
}`

const feedJSON = `{
	"gamePk": 745001,
	"gameData": {
		"game": {"pk": 745001, "type": "R"},
		"datetime": {"officialDate": "2024-06-02"},
		"teams": {
			"home": {"id": 147, "name": "New York Yankees", "abbreviation": "NYY"},
			"away": {"id": 111, "name": "Boston Red Sox", "abbreviation": "BOS"}
		},
		"players": {
			"ID30": {"id": 30, "fullName": "Away Catcher", "isPlayer": true, "batSide": {"code": "R"}},
			"ID10": {"id": 10, "fullName": "Home Catcher", "isPlayer": true, "batSide": {"code": "L"}},
			"ID99": {"id": 99, "fullName": "Coach", "isPlayer": false}
		}
	},
	"liveData": {
		"plays": {"allPlays": [
			{
				"result": {"description": "Walk."},
				"about": {"inning": 1, "halfInning": "top"},
				"count": {"balls": 4, "strikes": 0, "outs": 0},
				"matchup": {"batter": {"id": 30}, "pitcher": {"id": 40}, "batSide": {"code": "R"}},
				"playEvents": [
					{
						"isPitch": true,
						"playId": "p-1",
						"count": {"balls": 1, "strikes": 0},
						"details": {"code": "B", "description": "Ball"},
						"startTime": "2024-06-02T23:05:10.125Z",
						"endTime": "2024-06-02T23:05:14.000Z",
						"pitchData": {"strikeZoneTop": 3.4, "strikeZoneBottom": 1.6, "coordinates": {"pX": 1.21, "pZ": 2.3}}
					},
					{
						"isSubstitution": true,
						"details": {"eventType": "defensive_substitution", "description": "Catcher change."},
						"startTime": "2024-06-02T23:06:00.000Z",
						"position": {"name": "Catcher"},
						"player": {"id": 11}
					},
					{
						"details": {"eventType": "ejection", "description": "Manager ejected."},
						"startTime": "2024-06-02T23:07:00.000Z",
						"player": {"id": 99},
						"umpire": {"id": 500}
					}
				]
			},
			{
				"result": {},
				"about": {"inning": 1, "halfInning": "bottom"},
				"count": {"outs": 0},
				"matchup": {"batter": {"id": 10}, "pitcher": {"id": 41}, "batSide": {"code": "L"}},
				"playEvents": []
			}
		]},
		"boxscore": {
			"officials": [
				{"official": {"id": 501, "fullName": "First Base"}, "officialType": "First Base"},
				{"official": {"id": 500, "fullName": "Plate Umpire"}, "officialType": "Home Plate"}
			],
			"teams": {
				"home": {"players": {
					"ID11": {"person": {"id": 11}, "position": {"name": "Catcher"}, "gameStatus": {"isSubstitute": true, "isOnBench": false}},
					"ID10": {"person": {"id": 10}, "position": {"name": "Catcher"}, "gameStatus": {"isSubstitute": false, "isOnBench": false}}
				}},
				"away": {"players": {
					"ID30": {"person": {"id": 30}, "position": {"name": "Catcher"}, "gameStatus": {"isSubstitute": false, "isOnBench": false}}
				}}
			}
		}
	}
}`
